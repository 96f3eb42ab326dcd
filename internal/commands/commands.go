package commands

// Command is a user action reachable from the menu bar.
type Command int

const (
	ToggleFullscreen Command = iota
	ChangeTimeColor
	ChangeDateColor
	ChangeBackgroundColor
	ResetDefaults

	ToggleDisplayTime
	ToggleDisplayDate
	Toggle24Hour
	ToggleSeconds
	EditTimeFormat
	EditDateFormat

	DarkTheme
	LightTheme

	IncreaseTimeFontSize
	DecreaseTimeFontSize
	EditTimeFontSize
	IncreaseDateFontSize
	DecreaseDateFontSize
	EditDateFontSize
	ChooseTimeFont
	ChooseDateFont
	ChooseBackgroundImage
	ClearBackgroundImage
	EditBackgroundOpacity

	ToggleSound

	ToggleSlogan
	EditSlogan
	IncreaseSloganFontSize
	DecreaseSloganFontSize

	commandCount
)

// Category groups commands into one menu.
type Category int

const (
	CategorySettings Category = iota
	CategoryDisplay
	CategoryTheme
	CategoryFontAppearance
	CategorySound
	CategorySlogan

	categoryCount
)

var categoryMessages = [categoryCount]string{
	CategorySettings:       "MenuSettings",
	CategoryDisplay:        "MenuDisplay",
	CategoryTheme:          "MenuTheme",
	CategoryFontAppearance: "MenuFontAppearance",
	CategorySound:          "MenuSound",
	CategorySlogan:         "MenuSlogan",
}

// MessageID is the catalog key of the menu title.
func (c Category) MessageID() string {
	if c < 0 || c >= categoryCount {
		return ""
	}
	return categoryMessages[c]
}

// Categories lists the menus in menu-bar order.
func Categories() []Category {
	out := make([]Category, 0, categoryCount)
	for c := Category(0); c < categoryCount; c++ {
		out = append(out, c)
	}
	return out
}

// Definition describes how a command appears in the menu bar.
type Definition struct {
	Command   Command
	Category  Category
	MessageID string
	// SeparatorBefore starts a new group inside the menu.
	SeparatorBefore bool
}

var definitions = [commandCount]Definition{
	ToggleFullscreen:      {ToggleFullscreen, CategorySettings, "CmdToggleFullscreen", false},
	ChangeTimeColor:       {ChangeTimeColor, CategorySettings, "CmdChangeTimeColor", true},
	ChangeDateColor:       {ChangeDateColor, CategorySettings, "CmdChangeDateColor", false},
	ChangeBackgroundColor: {ChangeBackgroundColor, CategorySettings, "CmdChangeBackgroundColor", false},
	ResetDefaults:         {ResetDefaults, CategorySettings, "CmdResetDefaults", true},

	ToggleDisplayTime: {ToggleDisplayTime, CategoryDisplay, "CmdToggleDisplayTime", false},
	ToggleDisplayDate: {ToggleDisplayDate, CategoryDisplay, "CmdToggleDisplayDate", false},
	Toggle24Hour:      {Toggle24Hour, CategoryDisplay, "CmdToggle24Hour", true},
	ToggleSeconds:     {ToggleSeconds, CategoryDisplay, "CmdToggleSeconds", false},
	EditTimeFormat:    {EditTimeFormat, CategoryDisplay, "CmdEditTimeFormat", true},
	EditDateFormat:    {EditDateFormat, CategoryDisplay, "CmdEditDateFormat", false},

	DarkTheme:  {DarkTheme, CategoryTheme, "CmdDarkTheme", false},
	LightTheme: {LightTheme, CategoryTheme, "CmdLightTheme", false},

	IncreaseTimeFontSize:  {IncreaseTimeFontSize, CategoryFontAppearance, "CmdIncreaseTimeFontSize", false},
	DecreaseTimeFontSize:  {DecreaseTimeFontSize, CategoryFontAppearance, "CmdDecreaseTimeFontSize", false},
	EditTimeFontSize:      {EditTimeFontSize, CategoryFontAppearance, "CmdEditTimeFontSize", false},
	IncreaseDateFontSize:  {IncreaseDateFontSize, CategoryFontAppearance, "CmdIncreaseDateFontSize", true},
	DecreaseDateFontSize:  {DecreaseDateFontSize, CategoryFontAppearance, "CmdDecreaseDateFontSize", false},
	EditDateFontSize:      {EditDateFontSize, CategoryFontAppearance, "CmdEditDateFontSize", false},
	ChooseTimeFont:        {ChooseTimeFont, CategoryFontAppearance, "CmdChooseTimeFont", true},
	ChooseDateFont:        {ChooseDateFont, CategoryFontAppearance, "CmdChooseDateFont", false},
	ChooseBackgroundImage: {ChooseBackgroundImage, CategoryFontAppearance, "CmdChooseBackgroundImage", true},
	ClearBackgroundImage:  {ClearBackgroundImage, CategoryFontAppearance, "CmdClearBackgroundImage", false},
	EditBackgroundOpacity: {EditBackgroundOpacity, CategoryFontAppearance, "CmdEditBackgroundOpacity", false},

	ToggleSound: {ToggleSound, CategorySound, "CmdToggleSound", false},

	ToggleSlogan:           {ToggleSlogan, CategorySlogan, "CmdToggleSlogan", false},
	EditSlogan:             {EditSlogan, CategorySlogan, "CmdEditSlogan", false},
	IncreaseSloganFontSize: {IncreaseSloganFontSize, CategorySlogan, "CmdIncreaseSloganFontSize", true},
	DecreaseSloganFontSize: {DecreaseSloganFontSize, CategorySlogan, "CmdDecreaseSloganFontSize", false},
}

// All returns every command in declaration order.
func All() []Command {
	out := make([]Command, 0, commandCount)
	for c := Command(0); c < commandCount; c++ {
		out = append(out, c)
	}
	return out
}

// Lookup returns the menu definition of c.
func Lookup(c Command) (Definition, bool) {
	if c < 0 || c >= commandCount {
		return Definition{}, false
	}
	return definitions[c], true
}

// InCategory returns the definitions of one menu in display order.
func InCategory(cat Category) []Definition {
	var out []Definition
	for _, def := range definitions {
		if def.Category == cat {
			out = append(out, def)
		}
	}
	return out
}

func (c Command) String() string {
	if def, ok := Lookup(c); ok {
		return def.MessageID
	}
	return "CmdUnknown"
}
