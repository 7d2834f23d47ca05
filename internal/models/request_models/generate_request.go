package request_models

// GenerateScheduleRequest mirrors the onboarding wizard payload: trip window,
// destination, companions label, transport, style labels and the budget split.
type GenerateScheduleRequest struct {
	UserID         int    `json:"iUserFK"`
	StartDate      string `json:"dtDate1" binding:"required"`
	EndDate        string `json:"dtDate2" binding:"required"`
	Destination    string `json:"strWhere" binding:"required"`
	WithWho        string `json:"strWithWho"`
	Transport      string `json:"strTransport"`
	TripStyle      string `json:"strTripStyle"`
	TotalPeople    int    `json:"nTotalPeople"`
	TotalBudget    int64  `json:"nTotalBudget"`
	AlarmRatio     int    `json:"nAlarmRatio"`
	TransportRatio int    `json:"nTransportRatio"`
	LodgingRatio   int    `json:"nLodgingRatio"`
	FoodRatio      int    `json:"nFoodRatio"`
}
