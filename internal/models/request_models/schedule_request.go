package request_models

type AppendScheduleRequest struct {
	UserID         string   `json:"iUserFK"`
	Title          string   `json:"title"`
	StartDate      string   `json:"dtDate1" binding:"required"`
	EndDate        string   `json:"dtDate2" binding:"required"`
	Destination    string   `json:"strWhere" binding:"required"`
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

type ModifyScheduleRequest struct {
	ID          string `json:"iPK" binding:"required"`
	Title       string `json:"title"`
	StartDate   string `json:"dtDate1"`
	EndDate     string `json:"dtDate2"`
	Destination string `json:"strWhere"`
	TotalBudget int64  `json:"nTotalBudget"`
	Status      string `json:"chStatus"`
}

type AppendScheduleLocationRequest struct {
	ScheduleID   string `json:"iScheduleFK" binding:"required"`
	LocationID   string `json:"iLocationFK" binding:"required"`
	ScheduleTime string `json:"dtSchedule" binding:"required"`
	Memo         string `json:"strMemo"`
}

type ModifyScheduleLocationRequest struct {
	ID           string `json:"iPK" binding:"required"`
	LocationID   string `json:"iLocationFK"`
	ScheduleTime string `json:"dtSchedule"`
	Memo         string `json:"strMemo"`
}

type AppendExpenseRequest struct {
	ScheduleID  string `json:"iScheduleFK" binding:"required"`
	Amount      int64  `json:"nMoney" binding:"required"`
	Category    string `json:"chCategory"`
	ExpenseTime string `json:"dtExpense"`
	Memo        string `json:"strMemo"`
}

type ModifyExpenseRequest struct {
	ID          string `json:"iPK" binding:"required"`
	Amount      int64  `json:"nMoney"`
	Category    string `json:"chCategory"`
	ExpenseTime string `json:"dtExpense"`
	Memo        string `json:"strMemo"`
}
