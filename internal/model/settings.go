package model

// CategoryGroup names one of the four category lists in Settings.
type CategoryGroup string

const (
	// GroupIncome is the income category list.
	GroupIncome CategoryGroup = "income"
	// GroupExpense is the general expense category list.
	GroupExpense CategoryGroup = "expense"
	// GroupFixedExpense is the fixed expense category list.
	GroupFixedExpense CategoryGroup = "fixedExpense"
	// GroupVariableExpense is the variable expense category list.
	GroupVariableExpense CategoryGroup = "variableExpense"
)

// CategoryGroups lists every group in display order.
var CategoryGroups = []CategoryGroup{
	GroupIncome,
	GroupExpense,
	GroupFixedExpense,
	GroupVariableExpense,
}

// Categories holds the user-configurable category lists. Lists preserve
// insertion order and are not deduplicated.
type Categories struct {
	Income          []string `json:"income"`
	Expense         []string `json:"expense"`
	FixedExpense    []string `json:"fixedExpense"`
	VariableExpense []string `json:"variableExpense"`
}

// Group returns the list for a group, or nil for an unknown group.
func (c *Categories) Group(g CategoryGroup) []string {
	switch g {
	case GroupIncome:
		return c.Income
	case GroupExpense:
		return c.Expense
	case GroupFixedExpense:
		return c.FixedExpense
	case GroupVariableExpense:
		return c.VariableExpense
	default:
		return nil
	}
}

// SetGroup replaces the list for a group. Unknown groups are ignored.
func (c *Categories) SetGroup(g CategoryGroup, names []string) {
	switch g {
	case GroupIncome:
		c.Income = names
	case GroupExpense:
		c.Expense = names
	case GroupFixedExpense:
		c.FixedExpense = names
	case GroupVariableExpense:
		c.VariableExpense = names
	}
}

// Settings holds app preferences, budgets, and category lists.
// Budgets are optional: zero means no budget configured. Field names
// match the persisted JSON schema, which has no version marker, so
// values written by older sessions load as-is with missing fields
// left at their zero values.
type Settings struct {
	AppName          string     `json:"appName"`
	Currency         string     `json:"currency"`
	CurrencySymbol   string     `json:"currencySymbol"`
	ExpenseFrequency Frequency  `json:"expenseFrequency"`
	ResetCycle       string     `json:"resetCycle"`
	ResetDate        int        `json:"resetDate"`
	DailyBudget      float64    `json:"dailyBudget,omitempty"`
	MonthlyBudget    float64    `json:"monthlyBudget,omitempty"`
	Categories       Categories `json:"categories"`
}

// DefaultSettings returns the settings used before the user saves any.
func DefaultSettings() Settings {
	return Settings{
		AppName:          "Pennylog",
		Currency:         "IDR",
		CurrencySymbol:   "Rp",
		ExpenseFrequency: FrequencyDaily,
		ResetCycle:       "monthly",
		ResetDate:        1,
		Categories: Categories{
			Income:          []string{"Salary", "Freelance", "Investment", "Gift"},
			Expense:         []string{"Food", "Transport", "Entertainment", "Utilities"},
			FixedExpense:    []string{"Rent", "Insurance", "Subscription"},
			VariableExpense: []string{"Groceries", "Shopping", "Dining"},
		},
	}
}

// Clone returns a deep copy of the settings.
func (s Settings) Clone() Settings {
	out := s
	out.Categories = Categories{
		Income:          append([]string{}, s.Categories.Income...),
		Expense:         append([]string{}, s.Categories.Expense...),
		FixedExpense:    append([]string{}, s.Categories.FixedExpense...),
		VariableExpense: append([]string{}, s.Categories.VariableExpense...),
	}
	return out
}

// ActiveBudget returns the budget matching the configured expense
// frequency. Zero means no budget is configured.
func (s Settings) ActiveBudget() float64 {
	if s.ExpenseFrequency == FrequencyDaily {
		return s.DailyBudget
	}
	return s.MonthlyBudget
}
