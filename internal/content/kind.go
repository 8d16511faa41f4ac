package content

// Kind tags one clickable desk item, independent of how many renderable
// parts compose it.
type Kind int

const (
	KindUnknown Kind = iota
	KindLaptop
	KindPhone
	KindNotebook
	KindBusinessCard
	KindFolder
	KindResume
	KindTablet
)

var kindNames = map[Kind]string{
	KindLaptop:       "laptop",
	KindPhone:        "phone",
	KindNotebook:     "notebook",
	KindBusinessCard: "businessCard",
	KindFolder:       "folder",
	KindResume:       "resume",
	KindTablet:       "tablet",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseKind maps a layout-file tag back to a Kind. Unknown tags return
// KindUnknown and false.
func ParseKind(s string) (Kind, bool) {
	for k, name := range kindNames {
		if name == s {
			return k, true
		}
	}
	return KindUnknown, false
}

// Kinds returns every valid item kind in declaration order.
func Kinds() []Kind {
	return []Kind{
		KindLaptop, KindPhone, KindNotebook, KindBusinessCard,
		KindFolder, KindResume, KindTablet,
	}
}
