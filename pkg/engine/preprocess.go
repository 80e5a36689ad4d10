package engine

import "strings"

// preprocessSource rewrites command source into a form zygomys accepts:
//
//   - :hypercube becomes the string "__kw_hypercube", so preset and rotation
//     keywords never collide with user variables.
//   - line-count becomes line_count, since zygomys reads a hyphen inside a
//     symbol as subtraction.
//   - ; and ;; comments become // comments.
//
// String literals and comment text pass through untouched.
func preprocessSource(source string) string {
	r := rewriter{src: source}
	r.out.Grow(len(source) + len(source)/4)
	for r.pos < len(r.src) {
		switch c := r.src[r.pos]; {
		case c == '"':
			r.quoted('"', true)
		case c == '`':
			r.quoted('`', false)
		case c == ';':
			r.comment()
		case c == ':' && r.keyword():
		case c == '-' && r.joinsIdentifier():
			r.out.WriteByte('_')
			r.pos++
		default:
			r.out.WriteByte(c)
			r.pos++
		}
	}
	return r.out.String()
}

// rewriter walks source once, writing the rewritten form to out.
type rewriter struct {
	src string
	pos int
	out strings.Builder
}

// quoted copies a literal delimited by q, honoring backslash escapes when
// escapes is set. An unterminated literal runs to the end of source.
func (r *rewriter) quoted(q byte, escapes bool) {
	start := r.pos
	r.pos++
	for r.pos < len(r.src) && r.src[r.pos] != q {
		if escapes && r.src[r.pos] == '\\' && r.pos+1 < len(r.src) {
			r.pos++
		}
		r.pos++
	}
	if r.pos < len(r.src) {
		r.pos++
	}
	r.out.WriteString(r.src[start:r.pos])
}

func (r *rewriter) comment() {
	r.out.WriteString("//")
	for r.pos < len(r.src) && r.src[r.pos] == ';' {
		r.pos++
	}
	end := strings.IndexByte(r.src[r.pos:], '\n')
	if end < 0 {
		end = len(r.src) - r.pos
	}
	r.out.WriteString(r.src[r.pos : r.pos+end])
	r.pos += end
}

// keyword rewrites a :keyword or copies a := operator. It reports false
// when the colon starts neither, leaving the colon for the default case.
func (r *rewriter) keyword() bool {
	if r.pos+1 >= len(r.src) {
		return false
	}
	next := r.src[r.pos+1]
	if next == '=' {
		r.out.WriteString(":=")
		r.pos += 2
		return true
	}
	if !isLetter(next) {
		return false
	}
	end := r.pos + 1
	for end < len(r.src) && isKWChar(r.src[end]) {
		end++
	}
	r.out.WriteByte('"')
	r.out.WriteString(kwPrefix)
	r.out.WriteString(r.src[r.pos+1 : end])
	r.out.WriteByte('"')
	r.pos = end
	return true
}

// joinsIdentifier reports whether the hyphen at pos sits inside a kebab-case
// name rather than acting as minus or a negative sign.
func (r *rewriter) joinsIdentifier() bool {
	return r.pos > 0 && r.pos+1 < len(r.src) &&
		isIdentChar(r.src[r.pos-1]) && isLetter(r.src[r.pos+1])
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isKWChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '-' || c == '_'
}

func isIdentChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '_'
}
