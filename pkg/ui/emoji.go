package ui

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Status is an emoji shortcode that conveys the outcome of an
// operation. The chat platform renders the shortcode as an emoji.
type Status string

// Visual is an emoji shortcode used purely for decoration.
type Visual string

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	StatusSuccess   Status = ":white_check_mark:"
	StatusFailure   Status = ":x:"
	StatusCancelled Status = ":octagonal_sign:"
	StatusWarning   Status = ":warning:"
	StatusError     Status = ":interrobang:"
)

const (
	VisualArtPalette   Visual = ":art:"
	VisualStopwatch    Visual = ":stopwatch:"
	VisualChart        Visual = ":bar_chart:"
	VisualCoin         Visual = ":coin:"
	VisualPhoto        Visual = ":frame_photo:"
	VisualCat          Visual = ":cat:"
	VisualPeople       Visual = ":family_adult_adult_child_child:"
	VisualQuestionMark Visual = ":grey_question:"
	VisualHammer       Visual = ":hammer:"
	VisualAlarmClock   Visual = ":alarm_clock:"
	VisualAlert        Visual = ":exclamation:"
	VisualRandom       Visual = ":twisted_rightwards_arrows:"
	VisualMath         Visual = ":hash:"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (s Status) String() string {
	return string(s)
}

func (v Visual) String() string {
	return string(v)
}
