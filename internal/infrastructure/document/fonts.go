package document

import "os"

// Rutas típicas de TTFs con cobertura Unicode (incluyen U+20B9, la rupia).
var fontCandidates = []string{
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/truetype/freefont/FreeSans.ttf",
	"/usr/share/fonts/TTF/DejaVuSans.ttf",
	"DejaVuSans.ttf",
}

// resolveFont devuelve la primera TTF legible: primero la configurada, luego
// las candidatas del sistema. Cadena vacía significa "sin fuente Unicode" y
// el documento completo cae a moneda ASCII ("Rs.").
func resolveFont(configured string) string {
	candidates := fontCandidates
	if configured != "" {
		candidates = append([]string{configured}, candidates...)
	}
	for _, path := range candidates {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}
