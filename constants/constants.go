package constants

import "os"

func GetPort() string {
	port := os.Getenv("PORT")
	if port != "" {
		return port
	}
	return "8080"
}

const NumStrings = 6

// MaxFret is the highest fret considered anywhere in the core.
const MaxFret = 15

// MaxTriadSpan is the hand-stretch ceiling for triad voicings.
const MaxTriadSpan = 5

const BeatsPerMeasure = 4.0

const DefaultSubdivisions = 8

const DefaultBpm = 120
