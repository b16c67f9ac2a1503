// Package output writes rendered listings and failure reports to disk.
package output

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
)

const (
	outputFilePermissions  = 0o644
	invalidUTF8Replacement = "�"

	// errorReportFormat is the first line of a failure report.
	errorReportFormat = "An error occurred: %v\n"

	errorCreateOutputFormat = "create output file %s: %w"
	errorWriteOutputFormat  = "write output file %s: %w"
	errorFlushOutputFormat  = "flush output file %s: %w"
	errorCloseOutputFormat  = "close output file %s: %w"
)

// StackTracer is implemented by failures that carry the stack they were raised on.
type StackTracer interface {
	StackTrace() string
}

// WriteOutput replaces the file at outputPath with text encoded as UTF-8 without a byte order mark.
// Invalid UTF-8 sequences, such as undecodable file names, are replaced with U+FFFD.
func WriteOutput(text string, outputPath string) (writeError error) {
	outputFile, openError := os.OpenFile(outputPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, outputFilePermissions)
	if openError != nil {
		return fmt.Errorf(errorCreateOutputFormat, outputPath, openError)
	}
	defer func() {
		if closeError := outputFile.Close(); closeError != nil && writeError == nil {
			writeError = fmt.Errorf(errorCloseOutputFormat, outputPath, closeError)
		}
	}()

	bufferedWriter := bufio.NewWriter(outputFile)
	if _, writeStringError := bufferedWriter.WriteString(strings.ToValidUTF8(text, invalidUTF8Replacement)); writeStringError != nil {
		return fmt.Errorf(errorWriteOutputFormat, outputPath, writeStringError)
	}
	if flushError := bufferedWriter.Flush(); flushError != nil {
		return fmt.Errorf(errorFlushOutputFormat, outputPath, flushError)
	}
	return nil
}

// WriteErrorReport records failure in the file at reportPath. When the failure
// carries a stack trace, the trace follows the message.
func WriteErrorReport(failure error, reportPath string) error {
	var reportBuilder strings.Builder
	fmt.Fprintf(&reportBuilder, errorReportFormat, failure)

	var stackTracer StackTracer
	if errors.As(failure, &stackTracer) {
		reportBuilder.WriteString(stackTracer.StackTrace())
	}
	return WriteOutput(reportBuilder.String(), reportPath)
}
