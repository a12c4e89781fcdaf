package jslint

// Version is the semantic version of the rule pack reported in SARIF output.
const Version = "0.3.0"
