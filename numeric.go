package actson

import "strconv"

// parseFloat and parseInt convert the raw digit text accumulated in a
// Parser's value buffer. Deferring conversion to these accessor-time calls,
// rather than parsing while the number's bytes stream in, keeps the
// character-class/state machine free of numeric logic -- it only ever
// copies bytes.

func parseFloat(buf []byte) (float64, error) {
	return strconv.ParseFloat(string(buf), 64)
}

func parseInt(buf []byte) (int64, error) {
	return strconv.ParseInt(string(buf), 10, 64)
}
