package rules

import (
	"strconv"
	"strings"

	apperrors "github.com/louisbranch/yatzy/internal/platform/errors"
)

// Score sheet constants.
const (
	// UpperSectionSize is the number of leading Homogeneous categories.
	UpperSectionSize = 6
	// BonusThreshold is the upper section total that earns the bonus.
	BonusThreshold = 63
	// BonusPoints is awarded once the upper section reaches BonusThreshold.
	BonusPoints = 50
	// YatzyPoints is the fixed Yatzy score.
	YatzyPoints = 50
)

// Category is a named row of the score sheet.
type Category struct {
	// Key is the stable identifier, also used as the catalog key suffix.
	Key  string
	Rule Rule
}

// LabelKey returns the i18n catalog key for the category label.
func (c Category) LabelKey() string {
	return "category." + c.Key
}

// Upper reports whether the category belongs to the upper section.
func (c Category) Upper() bool {
	return c.Rule.Kind == KindHomogeneous
}

var categories = []Category{
	{Key: "ones", Rule: Homogeneous(1)},
	{Key: "twos", Rule: Homogeneous(2)},
	{Key: "threes", Rule: Homogeneous(3)},
	{Key: "fours", Rule: Homogeneous(4)},
	{Key: "fives", Rule: Homogeneous(5)},
	{Key: "sixes", Rule: Homogeneous(6)},
	{Key: "pair", Rule: OfAKind(2)},
	{Key: "two_pairs", Rule: TwoPair()},
	{Key: "three_of_a_kind", Rule: OfAKind(3)},
	{Key: "four_of_a_kind", Rule: OfAKind(4)},
	{Key: "small_straight", Rule: SmallStraight()},
	{Key: "large_straight", Rule: LargeStraight()},
	{Key: "full_house", Rule: FullHouse()},
	{Key: "chance", Rule: Chance()},
	{Key: "yatzy", Rule: OfAKindFixed(5, YatzyPoints)},
}

// Categories returns the fixed score sheet in play order.
func Categories() []Category {
	return append([]Category(nil), categories...)
}

// Lookup finds a category by key or by its 1-based sheet position.
func Lookup(ref string) (Category, error) {
	key := strings.ToLower(strings.TrimSpace(ref))
	if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= len(categories) {
		return categories[n-1], nil
	}
	for _, c := range categories {
		if c.Key == key {
			return c, nil
		}
	}
	return Category{}, apperrors.WithMetadata(apperrors.CodeCategoryUnknown, "unknown category "+strconv.Quote(ref), map[string]string{"Category": ref})
}

// Index returns the sheet position of key, or -1.
func Index(key string) int {
	for i, c := range categories {
		if c.Key == key {
			return i
		}
	}
	return -1
}
