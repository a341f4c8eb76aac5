package validation

import "strings"

// Storage-key namespace checks. These are literal-prefix matches, not
// regular expressions: a key is in namespace ns when, after stripping at
// most one of the known key prefixes, it reads "ns." followed by at least
// one character. "ro.hardware.*" keys are treated as both vendor and odm
// territory.

var keyPrefixes = []string{"init.svc.", "ro.", "persist."}

func inNamespace(key, ns string) bool {
	rest := key
	for _, prefix := range keyPrefixes {
		if strings.HasPrefix(key, prefix) {
			rest = key[len(prefix):]
			break
		}
	}
	return strings.HasPrefix(rest, ns+".") && len(rest) > len(ns)+1
}

func isHardwareKey(key string) bool {
	return strings.HasPrefix(key, "ro.hardware.") && len(key) > len("ro.hardware.")
}

func isVendorKey(key string) bool {
	return inNamespace(key, "vendor") || isHardwareKey(key)
}

func isOdmKey(key string) bool {
	return inNamespace(key, "odm") || isHardwareKey(key)
}
