// Package refresh provides export signatures.
// This file contains the signature token types, the signature builder, and
// signature comparison.
package refresh

import (
	"strings"

	"github.com/snowmerak/refresh.go/lib/exports"
)

// TokenKind discriminates the two element kinds of a Signature.
type TokenKind uint8

const (
	// TokenFamily marks a family-identity element.
	TokenFamily TokenKind = iota
	// TokenKey marks an export key-name element.
	TokenKey
)

// String returns the string representation of TokenKind.
func (k TokenKind) String() string {
	switch k {
	case TokenFamily:
		return "Family"
	case TokenKey:
		return "Key"
	default:
		return "Unknown"
	}
}

// Token is one element of a Signature: either an export key name or the
// family identity of a value. Tokens are comparable; family comparison is
// pointer identity, never a deep inspection.
type Token struct {
	Kind   TokenKind
	Key    string  // set when Kind is TokenKey
	Family *Family // set when Kind is TokenFamily; nil means "no family"
}

// FamilyToken wraps a family identity (possibly nil) as a signature element.
func FamilyToken(f *Family) Token {
	return Token{Kind: TokenFamily, Family: f}
}

// KeyToken wraps an export key name as a signature element.
func KeyToken(key string) Token {
	return Token{Kind: TokenKey, Key: key}
}

// String renders the token for diagnostics.
func (t Token) String() string {
	if t.Kind == TokenKey {
		return "key:" + t.Key
	}
	return "family:" + t.Family.String()
}

// Signature summarizes a module's exports for comparison across an update:
// the family of the exports value itself, followed by key/family pairs for
// every named export in enumeration order. Signatures are computed on demand
// and never cached.
type Signature []Token

// Equal reports whether two signatures have the same length and pairwise
// equal elements in order.
func (s Signature) Equal(other Signature) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// String renders the signature for diagnostics.
func (s Signature) String() string {
	parts := make([]string, len(s))
	for i, t := range s {
		parts[i] = t.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// BoundarySignature builds the signature of an exports value.
//
// The first element is always the family of the value itself. When the value
// is not an exports.Record there is nothing more to enumerate and the
// signature has length exactly 1. For a Record, every enumerable key except
// the module-system marker contributes its name and the family of its value,
// in the Record's enumeration order. Reading a key may invoke a getter;
// getters forward re-exports and are assumed side-effect free.
func (a *Adapter) BoundarySignature(exportsValue any) Signature {
	sig := Signature{FamilyToken(a.runtime.FamilyOf(exportsValue))}

	rec, ok := exportsValue.(*exports.Record)
	if !ok || rec == nil {
		return sig
	}

	for _, key := range rec.Keys() {
		if key == exports.ESModuleMarker {
			continue
		}
		sig = append(sig, KeyToken(key), FamilyToken(a.runtime.FamilyOf(rec.Get(key))))
	}
	return sig
}
