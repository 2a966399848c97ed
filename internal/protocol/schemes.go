package protocol

// Schemes denied unconditionally. Rendered content has no business
// reaching any of these inside the application shell.
var baseDisabledSchemes = []string{
	"about",
	"content",
	"chrome",
	"cid",
	"data",
	"filesystem",
	"ftp",
	"gopher",
	"javascript",
	"mailto",
}

// Network schemes denied only when external network access is off.
var networkSchemes = []string{
	"http",
	"https",
	"ws",
	"wss",
}

// DisabledSchemes enumerates every scheme to register with the deny-all
// handler. The result is a fresh slice; callers may not mutate shared
// state through it.
func DisabledSchemes(allowExternalNetwork bool) []string {
	schemes := append([]string(nil), baseDisabledSchemes...)
	if !allowExternalNetwork {
		schemes = append(schemes, networkSchemes...)
	}
	return schemes
}

// DenyAll is the stateless handler registered for disabled schemes.
// It has no logic beyond always denying.
func DenyAll(Request) Decision {
	return Decision{Code: NetErrAccessDenied}
}
