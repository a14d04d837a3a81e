package irdump

// Protocol identifies the encoding standard a decoder recognized in a
// capture.
type Protocol uint8

const (
	Unknown Protocol = iota
	NEC
	NECLike // NEC frame whose inverse-command check failed
	Sony
	RC5
	RC5X
	RC6
	RCMM
	Dish
	Sharp
	JVC
	Sanyo
	SanyoLC7461
	Mitsubishi
	Samsung
	LG
	Whynter
	AiwaRCT501
	Panasonic
	Denon
	Coolix
	Yamato
)

var protocolNames = [...]string{
	Unknown:     "UNKNOWN",
	NEC:         "NEC",
	NECLike:     "NEC (non-strict)",
	Sony:        "SONY",
	RC5:         "RC5",
	RC5X:        "RC5X",
	RC6:         "RC6",
	RCMM:        "RCMM",
	Dish:        "DISH",
	Sharp:       "SHARP",
	JVC:         "JVC",
	Sanyo:       "SANYO",
	SanyoLC7461: "SANYO_LC7461",
	Mitsubishi:  "MITSUBISHI",
	Samsung:     "SAMSUNG",
	LG:          "LG",
	Whynter:     "WHYNTER",
	AiwaRCT501:  "AIWA_RC_T501",
	Panasonic:   "PANASONIC",
	Denon:       "DENON",
	Coolix:      "COOLIX",
	Yamato:      "YAMATO",
}

// String returns the display name of the protocol. Identifiers outside
// the known set come back as "UNKNOWN". A " (Repeat)" qualifier, when a
// frame is a repeat code, is the caller's business, not String's.
func (p Protocol) String() string {
	if int(p) < len(protocolNames) {
		return protocolNames[p]
	}
	return protocolNames[Unknown]
}
