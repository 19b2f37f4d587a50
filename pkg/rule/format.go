package rule

import (
	"net/mail"
	"net/url"
	"regexp"
	"strings"
)

var (
	// E.164, optional leading plus
	phoneRegex = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)

	alphanumericRegex  = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
	alphaRegex         = regexp.MustCompile(`^[a-zA-Z]+$`)
	numericStringRegex = regexp.MustCompile(`^[0-9]+$`)
)

// Email accepts RFC 5322 addresses with a dotted domain and no display name.
func Email() Rule[string] {
	return Rule[string]{
		Name:           "email",
		Check:          func(value string, _ Env) bool { return isEmail(value) },
		Message:        "must be a valid email address",
		TranslationKey: "validation.email",
	}
}

func isEmail(value string) bool {
	if strings.TrimSpace(value) == "" {
		return false
	}

	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value {
		return false
	}

	local, domain, ok := strings.Cut(addr.Address, "@")
	if !ok || local == "" {
		return false
	}

	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}

	for part := range strings.SplitSeq(domain, ".") {
		if part == "" {
			return false
		}
	}
	return true
}

// URL requires an absolute URL with scheme and host.
func URL() Rule[string] {
	return Rule[string]{
		Name: "url",
		Check: func(value string, _ Env) bool {
			if strings.TrimSpace(value) == "" {
				return false
			}
			u, err := url.ParseRequestURI(value)
			return err == nil && u.Scheme != "" && u.Host != ""
		},
		Message:        "must be a valid URL",
		TranslationKey: "validation.url",
	}
}

// Phone accepts international numbers; spaces and dashes are ignored.
func Phone() Rule[string] {
	return Rule[string]{
		Name: "phone",
		Check: func(value string, _ Env) bool {
			cleaned := strings.ReplaceAll(strings.ReplaceAll(value, " ", ""), "-", "")
			if len(cleaned) < 7 {
				return false
			}
			return phoneRegex.MatchString(cleaned)
		},
		Message:        "must be a valid phone number in international format",
		TranslationKey: "validation.phone",
	}
}

func Alphanumeric() Rule[string] {
	return Rule[string]{
		Name:           "alphanumeric",
		Check:          func(value string, _ Env) bool { return alphanumericRegex.MatchString(value) },
		Message:        "must contain only letters and numbers",
		TranslationKey: "validation.alphanumeric",
	}
}

func Alpha() Rule[string] {
	return Rule[string]{
		Name:           "alpha",
		Check:          func(value string, _ Env) bool { return alphaRegex.MatchString(value) },
		Message:        "must contain only letters",
		TranslationKey: "validation.alpha",
	}
}

func NumericString() Rule[string] {
	return Rule[string]{
		Name:           "numeric",
		Check:          func(value string, _ Env) bool { return numericStringRegex.MatchString(value) },
		Message:        "must contain only digits",
		TranslationKey: "validation.numeric",
	}
}
