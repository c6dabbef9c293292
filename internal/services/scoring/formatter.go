package scoring

import (
	"fmt"
	"regexp"
	"strings"
)

// headingPattern detecta encabezados tipo "Security Considerations:" al
// inicio de línea: una o más palabras capitalizadas seguidas de dos puntos.
var headingPattern = regexp.MustCompile(`^[A-Z][a-z]+( [A-Z][a-z]+)*:`)

var bulletPattern = regexp.MustCompile(`(?m)^\s*[-*]\s+(.+)$`)

// FormatReviewHTML convierte el texto de la review en markup simple para
// mostrar: corta en secciones donde una línea nueva empieza con un
// encabezado capitalizado, cada sección con dos puntos se renderiza como
// subtítulo más cuerpo, y los bullets se convierten en listas. Es una
// conveniencia de display, las rutas JSON no la usan.
func FormatReviewHTML(reviewText string) string {
	var formatted strings.Builder

	for _, section := range splitSections(reviewText) {
		if strings.Contains(section, ":") {
			parts := strings.SplitN(section, ":", 2)
			title, content := parts[0], parts[1]

			formatted.WriteString(fmt.Sprintf("<h3>%s</h3>", strings.TrimSpace(title)))

			content = bulletPattern.ReplaceAllString(content, "<li>$1</li>")
			if strings.Contains(content, "<li>") {
				content = fmt.Sprintf("<ul>%s</ul>", content)
			}
			formatted.WriteString(fmt.Sprintf("<div>%s</div>", strings.TrimSpace(content)))
		} else {
			formatted.WriteString(fmt.Sprintf("<p>%s</p>", strings.TrimSpace(section)))
		}
	}

	return formatted.String()
}

// splitSections corta el texto en los saltos de línea que preceden a un
// encabezado. La primera línea siempre abre la primera sección, matchee o
// no.
func splitSections(text string) []string {
	lines := strings.Split(text, "\n")

	var sections []string
	var current []string

	for i, line := range lines {
		if i > 0 && headingPattern.MatchString(line) {
			sections = append(sections, strings.Join(current, "\n"))
			current = current[:0]
		}
		current = append(current, line)
	}
	sections = append(sections, strings.Join(current, "\n"))

	return sections
}
