package taxonomy

import "github.com/fingen-dev/fingen/internal/model"

// Default returns the canonical taxonomy used when a config does not supply one.
func Default() model.Taxonomy {
	return model.Taxonomy{
		ExpenseCategories: []model.CategoryWeight{
			{Name: "Dining", Weight: 0.25},
			{Name: "Shopping", Weight: 0.15},
			{Name: "Transport", Weight: 0.12},
			{Name: "Housing", Weight: 0.10},
			{Name: "Daily Necessities", Weight: 0.08},
			{Name: "Entertainment", Weight: 0.07},
			{Name: "Clothing", Weight: 0.05},
			{Name: "Education", Weight: 0.04},
			{Name: "Healthcare", Weight: 0.04},
			{Name: "Travel", Weight: 0.03},
			{Name: "Communication", Weight: 0.03},
			{Name: "Gifts", Weight: 0.02},
			{Name: "Other Expense", Weight: 0.02},
		},
		IncomeCategories: []string{
			SalaryCategory,
			"Bonus",
			"Investment Income",
			"Part-time Income",
			"Gift Money",
			"Refund",
			"Other Income",
		},
		BigTicketCategories: []string{"Housing", "Shopping", "Travel", "Education", "Healthcare"},
		// "Other Expense" and "Other Income" have no pools on purpose.
		Subcategories: map[string][]string{
			"Dining":            {"Breakfast", "Lunch", "Dinner", "Coffee", "Snacks", "Takeout"},
			"Shopping":          {"Online Shopping", "Supermarket", "Electronics", "Household Goods", "Department Store"},
			"Transport":         {"Taxi", "Metro Card Top-up", "Bike Share", "Fuel", "Parking Fee", "Train Ticket"},
			"Housing":           {"Rent", "Property Management Fee", "Utilities", "Broadband", "Repairs"},
			"Daily Necessities": {"Toiletries", "Cleaning Supplies", "Kitchenware", "Convenience Store"},
			"Entertainment":     {"Movies", "KTV", "Game Top-up", "Event Tickets", "Gym Membership"},
			"Clothing":          {"Shirts", "Shoes", "Outerwear", "Accessories"},
			"Education":         {"Tuition", "Books", "Online Course", "Exam Fee", "Training Class"},
			"Healthcare":        {"Medicine", "Outpatient Visit", "Physical Exam", "Dental Care"},
			"Travel":            {"Flights", "Hotel", "Attraction Tickets", "Travel Insurance"},
			"Communication":     {"Mobile Top-up", "Phone Plan", "Internet Plan"},
			"Gifts":             {"Birthday Gift", "Holiday Gift", "Wedding Gift", "Red Envelope"},
			SalaryCategory:      {SalaryDescription, "Salary Adjustment"},
			"Bonus":             {"Performance Bonus", "Year-end Bonus", "Project Bonus"},
			"Investment Income": {"Stock Dividends", "Fund Returns", "Interest Income"},
			"Part-time Income":  {"Freelance Work", "Tutoring", "Consulting Fee"},
			"Gift Money":        {"Holiday Gift Money", "Wedding Gift Money"},
			"Refund":            {"Purchase Refund", "Deposit Refund"},
		},
		PaymentMethods: map[string][]string{
			"Dining":            {"WeChat Pay", "Alipay", "Cash"},
			"Shopping":          {"WeChat Pay", "Alipay", "Cash", "Credit Card"},
			"Transport":         {"WeChat Pay", "Alipay", "Cash"},
			"Housing":           {"WeChat Pay", "Alipay", "Cash", SalaryPaymentMethod},
			"Daily Necessities": {"WeChat Pay", "Alipay", "Cash"},
			"Entertainment":     {"WeChat Pay", "Alipay", "Cash"},
			"Clothing":          {"WeChat Pay", "Alipay", "Credit Card"},
			"Education":         {"Alipay", "Credit Card", SalaryPaymentMethod},
			"Healthcare":        {"WeChat Pay", "Alipay", "Cash", "Medical Insurance Card"},
			"Travel":            {"Alipay", "Credit Card"},
			"Communication":     {"WeChat Pay", "Alipay"},
			"Gifts":             {"WeChat Pay", "Alipay", "Cash"},
			SalaryCategory:      {SalaryPaymentMethod},
			"Bonus":             {SalaryPaymentMethod},
			"Investment Income": {SalaryPaymentMethod},
			"Part-time Income":  {SalaryPaymentMethod, "WeChat Pay", "Alipay", "Cash"},
			"Gift Money":        {"Cash", "WeChat Pay"},
			"Refund":            {"Alipay", "WeChat Pay", "Credit Card"},
		},
	}
}
