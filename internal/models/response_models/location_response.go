package response_models

// CandidateLocation is one entry of the location_list returned by
// /location/request: a persisted Kakao place the reconciler can pin
// activities to. Field names mirror the frontend wire contract.
type CandidateLocation struct {
	ID        string  `json:"iPK"`
	Name      string  `json:"strName"`
	Address   string  `json:"strAddress"`
	Latitude  float64 `json:"ptLatitude"`
	Longitude float64 `json:"ptLongitude"`
}
