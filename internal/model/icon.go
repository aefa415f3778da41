package model

// IconTag - закрытый набор иконок услуг из каталога
type IconTag string

const (
	IconWrench      IconTag = "wrench"
	IconZap         IconTag = "zap"
	IconDroplets    IconTag = "droplets"
	IconPaintbrush  IconTag = "paintbrush"
	IconHammer      IconTag = "hammer"
	IconThermometer IconTag = "thermometer"
	IconSparkles    IconTag = "sparkles"
	IconLeaf        IconTag = "leaf"
	IconKey         IconTag = "key"
	IconTruck       IconTag = "truck"
	IconHelpCircle  IconTag = "help-circle"
)

// IconFallback используется для любых неизвестных значений
const IconFallback = IconHelpCircle

var knownIcons = map[IconTag]struct{}{
	IconWrench:      {},
	IconZap:         {},
	IconDroplets:    {},
	IconPaintbrush:  {},
	IconHammer:      {},
	IconThermometer: {},
	IconSparkles:    {},
	IconLeaf:        {},
	IconKey:         {},
	IconTruck:       {},
	IconHelpCircle:  {},
}

// ParseIconTag приводит строку из каталога к IconTag.
// Каталог исторически хранит имена в PascalCase ("Wrench", "HelpCircle"),
// поэтому оба варианта принимаются.
func ParseIconTag(raw string) IconTag {
	tag := IconTag(kebab(raw))
	if _, ok := knownIcons[tag]; ok {
		return tag
	}
	return IconFallback
}

func kebab(s string) string {
	out := make([]byte, 0, len(s)+4)
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'A' && c <= 'Z':
			if i > 0 && s[i-1] != '-' && s[i-1] != '_' {
				out = append(out, '-')
			}
			out = append(out, c+('a'-'A'))
		case c == '_' || c == ' ':
			out = append(out, '-')
		default:
			out = append(out, c)
		}
	}
	return string(out)
}
