package calorie

import (
	"regexp"
	"strconv"

	"github.com/gofiber/fiber/v2/log"
)

// totalPatterns is tried in order, most specific first. The analysis text is
// model output and its shape drifts between model versions, so extraction
// degrades through progressively looser patterns instead of assuming one
// format.
var totalPatterns = []*regexp.Regexp{
	// *Total:* 450 kcal (emphasis marker around the label)
	regexp.MustCompile(`(?i)\*Total:?\*:?\s*(\d+)\s*kcal`),
	// Total: 450 kcal
	regexp.MustCompile(`(?i)Total:?\s*(\d+)\s*kcal`),
	// Total ... 450 kcal
	regexp.MustCompile(`(?i)Total.*?(\d+)\s*kcal`),
	// 450 kcal ... total
	regexp.MustCompile(`(?i)(\d+)\s*kcal.*?total`),
	// total ... 450 kcal
	regexp.MustCompile(`(?i)total.*?(\d+)\s*kcal`),
	// 450 kcal | P 49g | C 45g | F 5g (macro line without an explicit label)
	regexp.MustCompile(`(?i)(\d+)\s*kcal.*?P\s*\d+g.*?C\s*\d+g.*?F\s*\d+g`),
}

// Extractor pulls a total calorie figure out of free-form meal analysis
// text. Extract never fails; 0 means no usable figure was found.
type Extractor struct {
	minCalories int
	maxCalories int
}

func NewExtractor(minCalories, maxCalories int) *Extractor {
	return &Extractor{minCalories: minCalories, maxCalories: maxCalories}
}

// Extract returns the first in-bounds match of the pattern cascade. Matches
// that parse badly or fall outside [min, max] are skipped rather than
// returned, so a percentage or an item count that happens to fit the
// number-and-unit shape does not get mistaken for a calorie total.
func (e *Extractor) Extract(text string) int {
	for _, pattern := range totalPatterns {
		match := pattern.FindStringSubmatch(text)
		if match == nil {
			continue
		}

		calories, err := strconv.Atoi(match[1])
		if err != nil {
			continue
		}
		if calories < e.minCalories || calories > e.maxCalories {
			continue
		}

		log.Debugf("extracted %d calories using pattern %s", calories, pattern.String())
		return calories
	}

	log.Warnf("could not extract calories from text: %s", snippet(text, 200))
	return 0
}

func snippet(text string, max int) string {
	if len(text) <= max {
		return text
	}
	return text[:max] + "..."
}
