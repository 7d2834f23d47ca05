package request_models

// PlaceQuery is one name/category pair sent to the place search, with the
// region prefix already stripped from PlaceName.
type PlaceQuery struct {
	PlaceName         string `json:"place_name" binding:"required"`
	CategoryGroupCode string `json:"category_group_code"`
}

type LocationRequest struct {
	RequestList []PlaceQuery `json:"request_list" binding:"required"`
}
