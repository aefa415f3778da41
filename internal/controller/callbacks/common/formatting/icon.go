package formatting

import "github.com/Freeeeeet/repair_bot/internal/model"

// Символ для каждой иконки каталога
var iconSymbols = map[model.IconTag]string{
	model.IconWrench:      "🔧",
	model.IconZap:         "⚡",
	model.IconDroplets:    "💧",
	model.IconPaintbrush:  "🖌",
	model.IconHammer:      "🔨",
	model.IconThermometer: "🌡",
	model.IconSparkles:    "✨",
	model.IconLeaf:        "🍃",
	model.IconKey:         "🔑",
	model.IconTruck:       "🚚",
	model.IconHelpCircle:  "❔",
}

// IconSymbol возвращает символ иконки; неизвестный тег отображается как fallback
func IconSymbol(tag model.IconTag) string {
	if s, ok := iconSymbols[tag]; ok {
		return s
	}
	return iconSymbols[model.IconFallback]
}
