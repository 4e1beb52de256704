package identity

import (
	"strings"
	"unicode"
)

// Initials derives 1-2 uppercase characters for avatar display. The fallback
// order is fixed:
//
//  1. first and last name present: first letter of each;
//  2. only first name: mine a second initial from the email local-part
//     (split on "."; exactly two segments yields the second segment's first
//     letter), else the single first initial;
//  3. only email: dotted local-parts yield the first letters of the first
//     two segments; undotted ones are split roughly in half and the first
//     letter of each half is taken;
//  4. nothing available: empty string, and the caller renders a neutral
//     placeholder glyph.
//
// This is a heuristic. Callers depend on the order of the fallbacks, not on
// the semantic quality of email-derived initials.
func Initials(firstName, lastName, email string) string {
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)

	if firstName != "" && lastName != "" {
		return firstLetter(firstName) + firstLetter(lastName)
	}

	local := emailLocalPart(email)

	if firstName != "" {
		if segments := strings.Split(local, "."); len(segments) == 2 && segments[1] != "" {
			return firstLetter(firstName) + firstLetter(segments[1])
		}

		return firstLetter(firstName)
	}

	if local != "" {
		if strings.Contains(local, ".") {
			segments := strings.SplitN(local, ".", 3)
			initials := firstLetter(segments[0])
			if len(segments) > 1 {
				initials += firstLetter(segments[1])
			}

			return initials
		}

		runes := []rune(local)
		if len(runes) < 2 {
			return firstLetter(local)
		}
		half := len(runes) / 2

		return upper(runes[0]) + upper(runes[half])
	}

	return ""
}

// emailLocalPart returns the part of the address before the first "@",
// empty when the address itself is empty.
func emailLocalPart(email string) string {
	email = strings.TrimSpace(email)
	if email == "" {
		return ""
	}
	local, _, _ := strings.Cut(email, "@")

	return local
}

func firstLetter(s string) string {
	for _, r := range s {
		return upper(r)
	}

	return ""
}

func upper(r rune) string {
	return string(unicode.ToUpper(r))
}
