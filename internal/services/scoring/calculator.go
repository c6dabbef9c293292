package scoring

import (
	"math"
	"strings"
)

// Indicadores fijos de calidad. El matching es por substring, no por palabra
// completa: "goodbye" cuenta como "good". Se conserva así por compatibilidad
// con el comportamiento histórico del scoring.
var positiveIndicators = []string{
	"good", "excellent", "well", "properly", "clean", "efficient",
	"secure", "maintainable", "readable", "follows", "standard",
}

var negativeIndicators = []string{
	"error", "issue", "problem", "bug", "vulnerability", "security risk",
	"inefficient", "poor", "bad", "wrong", "incorrect", "missing",
}

// neutralScore se devuelve cuando la review no contiene ningún indicador.
const neutralScore = 80

// noSuggestionsPlaceholder es parte del contrato de la API: la lista de
// sugerencias nunca viaja vacía.
const noSuggestionsPlaceholder = "No specific code suggestions found in the review."

var suggestionTriggers = []string{"suggest", "recommend", "consider", "instead of", "use"}

// CalculateScore computa un puntaje heurístico [0,100] de la review
// generada, contando qué indicadores aparecen en el texto. Es una función
// pura y determinística.
func CalculateScore(reviewText string) int {
	textLower := strings.ToLower(reviewText)

	var positive, negative int
	for _, word := range positiveIndicators {
		if strings.Contains(textLower, word) {
			positive++
		}
	}
	for _, word := range negativeIndicators {
		if strings.Contains(textLower, word) {
			negative++
		}
	}

	if positive+negative == 0 {
		return neutralScore
	}

	return int(math.Round(float64(positive) / float64(positive+negative) * 100))
}

// ExtractSuggestions filtra las líneas de la review que parecen sugerencias
// de código, en el orden original y sin deduplicar. Si ninguna línea matchea
// devuelve el placeholder como único elemento.
func ExtractSuggestions(reviewText string) []string {
	var suggestions []string

	for _, line := range strings.Split(reviewText, "\n") {
		lower := strings.ToLower(line)
		for _, trigger := range suggestionTriggers {
			if strings.Contains(lower, trigger) {
				suggestions = append(suggestions, strings.TrimSpace(line))
				break
			}
		}
	}

	if len(suggestions) == 0 {
		return []string{noSuggestionsPlaceholder}
	}
	return suggestions
}
