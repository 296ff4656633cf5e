package layout

// Color RGB de 8 bits por canal.
type Color struct {
	R, G, B int
}

// Align alineación horizontal del texto dentro de su celda.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// FontStyle estilo tipográfico de una celda.
type FontStyle int

const (
	StyleRegular FontStyle = iota
	StyleBold
	StyleItalic
)

// TextProps propiedades de una celda de texto. Fill nil = sin fondo.
type TextProps struct {
	Style FontStyle
	Size  float64
	Align Align
	Color Color
	Fill  *Color
}

// Canvas es la superficie de dibujo que consume el motor de layout. Es
// deliberadamente tonta: no lleva cursor ni estado de página propio más allá
// del contador; toda decisión de posición y paginación vive en el Engine, que
// así se puede testear con un canvas falso que solo graba operaciones.
//
// Las coordenadas están en puntos tipográficos con origen arriba-izquierda.
type Canvas interface {
	PageWidth() float64
	PageHeight() float64

	// AddPage inicia una página nueva; la primera página también se crea así.
	AddPage()
	// PageNo devuelve el número de la página actual (1-based, 0 sin páginas).
	PageNo() int

	// Cell dibuja texto posicionado; si p.Fill no es nil pinta el fondo.
	Cell(x, y, w, h float64, text string, p TextProps)
	// FillRect pinta un rectángulo sólido.
	FillRect(x, y, w, h float64, c Color)
	// Image incrusta una imagen desde archivo; los errores se ignoran
	// (logo y QR son best-effort, nunca tumban un render).
	Image(path string, x, y, w float64)
}
