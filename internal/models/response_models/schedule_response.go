package response_models

type ScheduleResponse struct {
	ID             string   `json:"iPK"`
	Title          string   `json:"title"`
	Destination    string   `json:"strWhere"`
	StartDate      string   `json:"dtDate1"`
	EndDate        string   `json:"dtDate2"`
	WithWho        string   `json:"strWithWho"`
	Transport      string   `json:"strTransport"`
	Styles         []string `json:"styles"`
	TotalPeople    int      `json:"nTotalPeople"`
	TotalBudget    int64    `json:"nTotalBudget"`
	AlarmRatio     int      `json:"nAlarmRatio"`
	TransportRatio int      `json:"nTransportRatio"`
	LodgingRatio   int      `json:"nLodgingRatio"`
	FoodRatio      int      `json:"nFoodRatio"`
	Status         string   `json:"chStatus"`
}

// ScheduleLocationEntry is one persisted pin with its place preloaded.
type ScheduleLocationEntry struct {
	ID           string            `json:"iPK"`
	ScheduleTime string            `json:"dtSchedule"`
	Memo         string            `json:"strMemo"`
	Location     CandidateLocation `json:"location"`
}

// ScheduleLocationDay groups persisted pins into one trip day.
type ScheduleLocationDay struct {
	Day       int                     `json:"day"`
	Date      string                  `json:"date"`
	Locations []ScheduleLocationEntry `json:"location_list"`
}

type ScheduleLocationListResponse struct {
	ScheduleID string                `json:"iSchedulePK"`
	DayCount   int                   `json:"day_count"`
	Days       []ScheduleLocationDay `json:"days"`
}

type ExpenseResponse struct {
	ID          string `json:"iPK"`
	Amount      int64  `json:"nMoney"`
	Category    string `json:"chCategory"`
	ExpenseTime string `json:"dtExpense"`
	Memo        string `json:"strMemo"`
}

type ScheduleUserResponse struct {
	ID    string `json:"iPK"`
	Name  string `json:"strName"`
	Email string `json:"strEmail"`
	Role  string `json:"role"`
}
