package relevance

import "regexp"

// Keyword/regex table for camera and optics talk. Cheap pre-filter so
// extraction and source fan-out are not paid for every message.
// \b is ASCII-only in RE2; Cyrillic terms match on stems or whitespace.
var patterns = []*regexp.Regexp{
	// Focal length and aperture notation.
	regexp.MustCompile(`(?i)\b\d{1,4}\s*(mm|мм)`),
	regexp.MustCompile(`(?i)\bf/\d+([.,]\d+)?`),
	regexp.MustCompile(`\b1:\d+([.,]\d+)?`),

	// Brands, including Soviet lens families.
	regexp.MustCompile(`(?i)\b(canon|nikon|sony|fujifilm|fuji|olympus|panasonic|leica|pentax|sigma|tamron|zeiss|samyang|viltrox|laowa|takumar|helios)\b`),
	regexp.MustCompile(`(?i)(гелиос|юпитер|индустар|таир|зенитар|мир-\d)`),

	// Gear and optics terminology.
	regexp.MustCompile(`(?i)(объектив|фотоаппарат|беззеркал|зеркалк|тушк|байонет|матриц|диафрагм|выдержк|светосил|автофокус|стабилизатор|бок[еэ]|полтинник|ширик|телевик)`),
	regexp.MustCompile(`(?i)(^|\s)(фикс|зум|кроп)`),
	regexp.MustCompile(`(?i)\b(lens|camera|mirrorless|aperture|shutter|bokeh|autofocus|telephoto|wide-angle|prime|zoom)\b`),

	// Review / recommendation intent.
	regexp.MustCompile(`(?i)(обзор|отзыв|стоит\s+ли\s+брать|посоветуй|порекомендуй|что\s+лучше|сравни)`),
	regexp.MustCompile(`(?i)\b(review|recommend|worth\s+buying)\b`),
}

// ShouldEnrich reports whether the text warrants an external lookup.
func ShouldEnrich(text string) bool {
	for _, re := range patterns {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}
