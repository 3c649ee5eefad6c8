package budget

// Budget is the API response model for a budget and its spend this month.
type Budget struct {
	ID           string `json:"id" doc:"Budget UUID"`
	CategoryID   string `json:"categoryID" doc:"Category UUID"`
	CategoryName string `json:"categoryName" doc:"Category name"`
	Amount       string `json:"amount" doc:"Decimal budget amount"`
	StartDate    string `json:"startDate" format:"date" doc:"First day of the budget month"`
	EndDate      string `json:"endDate" format:"date" doc:"Last day of the budget month"`
	Spent        string `json:"spent" doc:"Decimal amount spent in the month"`
	Remaining    string `json:"remaining" doc:"Decimal amount left, negative when exceeded"`
	Percentage   string `json:"percentage" doc:"Spent as a percentage of amount, two decimals"`
}

const dateLayout = "2006-01-02"
