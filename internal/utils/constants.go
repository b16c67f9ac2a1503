package utils

// EmptyString represents a reusable empty string constant.
const EmptyString = ""

// StandardErrorSink is the zap sink name for the process standard error stream.
const StandardErrorSink = "stderr"

// ApplicationName is the command name and the prefix of the files struktur writes.
const ApplicationName = "struktur"
