package icon

// Icon identifies a symbol in the global registry.
type Icon int

const (
	Progress Icon = iota
	Success
	Fail
	Video
	Gallery
	File
	Link
)

var icons = map[Icon]*iconDef{
	Progress: {
		emoji:   "⏳",
		nerd:    "",
		plain:   "...",
		kaomoji: "(・_・ヾ",
		squares: "▫",
	},
	Success: {
		emoji:   "🎉",
		nerd:    "",
		plain:   "OK",
		kaomoji: "(ᵔ◡ᵔ)",
		squares: "▣",
	},
	Fail: {
		emoji:   "💀",
		nerd:    "",
		plain:   "X",
		kaomoji: "(×_×)",
		squares: "▨",
	},
	Video: {
		emoji:   "🎬",
		nerd:    "",
		plain:   ">",
		kaomoji: "(▰˘◡˘▰)",
		squares: "▶",
	},
	Gallery: {
		emoji:   "🖼️",
		nerd:    "",
		plain:   "G",
		kaomoji: "(◕‿◕)",
		squares: "▦",
	},
	File: {
		emoji:   "📁",
		nerd:    "",
		plain:   "F",
		kaomoji: "(￣▽￣)ノ",
		squares: "▧",
	},
	Link: {
		emoji:   "🔗",
		nerd:    "",
		plain:   "@",
		kaomoji: "(づ｡◕‿‿◕｡)づ",
		squares: "▥",
	},
}
