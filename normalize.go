package cssval

import "golang.org/x/text/transform"

// normalize preprocesses the input stream per CSS Syntax §3.3: CRLF, CR,
// and FF become LF, and NUL becomes U+FFFD.
type normalize struct {
	prev byte
}

const replacementCharacter = "�"

func (n *normalize) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		c := src[nSrc]
		switch c {
		case '\r', '\f':
			if nDst >= len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			dst[nDst] = '\n'
			nDst++
		case '\n':
			if n.prev == '\r' {
				// second half of a CRLF pair, already emitted
				n.prev = c
				nSrc++
				continue
			}
			if nDst >= len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			dst[nDst] = '\n'
			nDst++
		case 0:
			if nDst+len(replacementCharacter) > len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			nDst += copy(dst[nDst:], replacementCharacter)
		default:
			if nDst >= len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			dst[nDst] = c
			nDst++
		}
		n.prev = c
		nSrc++
	}
	return nDst, nSrc, nil
}

func (n *normalize) Reset() {
	n.prev = 0
}
