package mapping

import (
	"fmt"
	"slices"
)

// Category groups entries for display.
type Category string

const (
	CategoryStatus      Category = "status"
	CategoryDevelopment Category = "development"
	CategoryOperations  Category = "operations"
	CategoryArrows      Category = "arrows"
	CategoryTypography  Category = "typography"
	CategoryQuotes      Category = "quotes"
	CategorySymbols     Category = "symbols"
	CategoryMath        Category = "math"
	CategoryFractions   Category = "fractions"
	CategoryCustom      Category = "custom"
)

//nolint:gochecknoglobals // configuration data, effectively const
var categoryOrder = []Category{
	CategoryStatus,
	CategoryDevelopment,
	CategoryOperations,
	CategoryArrows,
	CategoryTypography,
	CategoryQuotes,
	CategorySymbols,
	CategoryMath,
	CategoryFractions,
	CategoryCustom,
}

// Categories returns category names in display order.
func Categories() []Category {
	return slices.Clone(categoryOrder)
}

// ParseCategory resolves a category name.
func ParseCategory(name string) (Category, error) {
	category := Category(name)
	if !slices.Contains(categoryOrder, category) {
		return "", fmt.Errorf("unknown category %q", name)
	}

	return category, nil
}

func (c Category) order() int {
	if idx := slices.Index(categoryOrder, c); idx >= 0 {
		return idx
	}

	return len(categoryOrder)
}

//nolint:gochecknoglobals // configuration data, effectively const
var builtin = map[Category]map[rune]string{
	CategoryStatus: {
		'✓': "[OK]",
		'✔': "[SUCCESS]",
		'✗': "[FAIL]",
		'✘': "[ERROR]",
		'⚠': "[WARNING]",
		'⚡': "[ALERT]",
		'ℹ': "[INFO]",
	},
	CategoryDevelopment: {
		'🔧': "[CONFIG]",
		'📁': "[FOLDER]",
		'📂': "[FOLDER_OPEN]",
		'📄': "[FILE]",
		'💾': "[SAVE]",
		'🔍': "[SEARCH]",
		'🔎': "[SEARCH]",
		'🔒': "[LOCKED]",
		'🔓': "[UNLOCKED]",
		'🔑': "[KEY]",
	},
	CategoryOperations: {
		'📦': "[PACKAGE]",
		'🚀': "[DEPLOY]",
		'🛠': "[BUILD]",
		'⚙': "[SETTINGS]",
		'🐛': "[BUG]",
		'🔥': "[CRITICAL]",
		'🏁': "[COMPLETE]",
		'🚨': "[EMERGENCY]",
		'📊': "[STATS]",
		'📈': "[GROWTH]",
		'📉': "[DECLINE]",
		'📋': "[REPORT]",
		'💡': "[IDEA]",
		'🎯': "[TARGET]",
		'⏰': "[TIME]",
		'📅': "[CALENDAR]",
	},
	CategoryArrows: {
		'→': "->",
		'←': "<-",
		'↔': "<->",
		'↑': "^",
		'↓': "v",
		'⇒': "=>",
		'⇐': "<=",
		'⇔': "<=>",
	},
	CategoryTypography: {
		'…': "...",
		'•': "*",
		'●': "*",
		'○': "o",
		'◦': "o",
		'▪': "*",
		'▫': "o",
		'■': "[#]",
		'□': "[ ]",
		'▶': ">",
		'◀': "<",
		'▲': "^",
		'▼': "v",
		'★': "*",
		'☆': "o",
	},
	// Left and right marks look alike but are distinct code points; both are kept.
	CategoryQuotes: {
		'—': "--",
		'–': "-",
		'“': `"`,
		'”': `"`,
		'‘': "'",
		'’': "'",
		'„': `"`,
		'‚': "'",
		'«': "<<",
		'»': ">>",
	},
	CategorySymbols: {
		'©': "(c)",
		'®': "(R)",
		'™': "(TM)",
		'°': "deg",
		'¢': "cents",
		'£': "GBP",
		'€': "EUR",
		'¥': "JPY",
		'§': "S",
		'¶': "P",
	},
	CategoryMath: {
		'π': "pi",
		'∑': "SUM",
		'∞': "infinity",
		'≈': "~=",
		'≠': "!=",
		'≤': "<=",
		'≥': ">=",
		'±': "+/-",
		'×': "x",
		'÷': "/",
		'√': "sqrt",
		'∝': "proportional",
		'∈': "in",
		'∉': "not in",
		'⊂': "subset",
		'∩': "intersection",
		'∪': "union",
		'Δ': "delta",
		'∂': "partial",
		'∫': "integral",
	},
	CategoryFractions: {
		'½': "1/2",
		'⅓': "1/3",
		'⅔': "2/3",
		'¼': "1/4",
		'¾': "3/4",
		'⅕': "1/5",
		'⅖': "2/5",
		'⅗': "3/5",
		'⅘': "4/5",
		'⅙': "1/6",
		'⅚': "5/6",
		'⅐': "1/7",
		'⅛': "1/8",
		'⅜': "3/8",
		'⅝': "5/8",
		'⅞': "7/8",
		'⅑': "1/9",
		'⅒': "1/10",
	},
}

func builtinEntries() []Entry {
	var entries []Entry

	for category, symbols := range builtin {
		for source, target := range symbols {
			entries = append(entries, Entry{Source: source, Target: target, Category: category})
		}
	}

	return entries
}
