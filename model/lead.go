package model

import "strings"

// Lead identifies one of the 12 standard ECG electrode derivations. The
// core treats leads as opaque keys and never branches on lead identity;
// P-wave analysis runs on whichever lead's samples the caller passes
// (conventionally V1).
type Lead int

// The 12 standard leads.
const (
	LeadI Lead = iota + 1
	LeadII
	LeadIII
	LeadAVR
	LeadAVL
	LeadAVF
	LeadV1
	LeadV2
	LeadV3
	LeadV4
	LeadV5
	LeadV6
)

var leadNames = map[Lead]string{
	LeadI:   "I",
	LeadII:  "II",
	LeadIII: "III",
	LeadAVR: "aVR",
	LeadAVL: "aVL",
	LeadAVF: "aVF",
	LeadV1:  "V1",
	LeadV2:  "V2",
	LeadV3:  "V3",
	LeadV4:  "V4",
	LeadV5:  "V5",
	LeadV6:  "V6",
}

// String returns the conventional short name of the lead, e.g. "aVR".
func (l Lead) String() string {
	if name, ok := leadNames[l]; ok {
		return name
	}
	return "unknown"
}

// parseLeadTable maps lowercased lead names to their Lead constant.
//
// The source this package was distilled from collapsed aVR, aVL, and aVF
// all onto lead III — almost certainly a transcription bug rather than
// an intentional simplification. This table keeps each augmented lead
// distinct (see the "lead mapping" open question in SPEC_FULL.md).
var parseLeadTable = map[string]Lead{
	"i":   LeadI,
	"ii":  LeadII,
	"iii": LeadIII,
	"avr": LeadAVR,
	"avl": LeadAVL,
	"avf": LeadAVF,
	"v1":  LeadV1,
	"v2":  LeadV2,
	"v3":  LeadV3,
	"v4":  LeadV4,
	"v5":  LeadV5,
	"v6":  LeadV6,
}

// ParseLead maps a lead name (case-insensitive, e.g. "v1", "aVR") to its
// Lead constant. An unrecognized name is an invalid-input error: callers
// must not receive a silently-wrong lead.
func ParseLead(s string) (Lead, error) {
	lead, ok := parseLeadTable[strings.ToLower(s)]
	if !ok {
		return 0, InvalidInput("ParseLead", ErrUnknownLead)
	}
	return lead, nil
}
