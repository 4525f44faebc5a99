package pattern

import "github.com/Veraticus/spice-explain/internal/model"

// DefaultRules returns the starter set of pattern rules offered by `spice patterns seed`.
func DefaultRules() []model.PatternRule {
	rules := []model.PatternRule{
		// Income patterns - highest priority
		{
			Name:        "Direct Deposit",
			Pattern:     `anyof("PAYROLL", "DIRECT DEP", "SALARY", "WAGES")`,
			Category:    "Income",
			Subcategory: "Salary",
			Priority:    100,
		},
		{
			Name:        "Tax Refund",
			Pattern:     `anyof("IRS TREAS", "TAX REF", "STATE TAX REF")`,
			Category:    "Income",
			Subcategory: "Tax Refund",
			Priority:    95,
		},
		{
			Name:        "Interest Income",
			Pattern:     `INTEREST|DIVIDEND|INT\sEARNED`,
			Category:    "Income",
			Subcategory: "Interest",
			Priority:    95,
		},
		{
			Name:        "Social Security",
			Pattern:     `startswith("SSA TREAS")`,
			Category:    "Income",
			Subcategory: "Benefits",
			Priority:    95,
		},
		// Transfer patterns
		{
			Name:        "Wire Transfer",
			Pattern:     `^WIRE\s+TRANSFER`,
			Category:    "Transfers",
			Subcategory: "Wire",
			Priority:    85,
		},
		{
			Name:        "Credit Card Payment",
			Pattern:     `CC\sPAYMENT|CREDIT\sCARD\sPAY|CARD\sPAYMENT|PMT\sTO`,
			Category:    "Transfers",
			Subcategory: "Credit Card",
			Priority:    75,
		},
		{
			Name:        "Savings Transfer",
			Pattern:     `contains("SAVINGS TRANSFER")`,
			Category:    "Transfers",
			Subcategory: "Savings",
			Priority:    75,
		},
		// Expense patterns
		{
			Name:        "Bill Payment",
			Pattern:     `anyof("BILL PAY", "AUTOPAY", "RECURRING", "SUBSCRIPTION")`,
			Category:    "Bills",
			Priority:    45,
		},
		{
			Name:        "Fee",
			Pattern:     `(?:SERVICE|MAINT)\s+(?:CHG|FEE)$`,
			Category:    "Fees",
			Priority:    45,
		},
		{
			Name:        "ATM Withdrawal",
			Pattern:     `^ATM\s+\d+`,
			Category:    "Cash",
			Subcategory: "ATM",
			Priority:    50,
		},
	}

	for i := range rules {
		rules[i].IsActive = true
	}

	return rules
}
