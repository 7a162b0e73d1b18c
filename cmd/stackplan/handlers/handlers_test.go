package handlers

import (
	"bytes"
	"errors"
	"testing"
)

// saveAndRestoreFactories saves all factory variables and restores them
// after the test.
func saveAndRestoreFactories(t *testing.T) {
	t.Helper()
	origLoadConfigFile := loadConfigFile
	origFindConfigFile := findConfigFile
	origNewDescriber := newDescriber
	origNewImageCatalog := newImageCatalog
	origNewTokenIssuer := newTokenIssuer
	origNewUploader := newUploader
	origCheckTools := checkTools
	origRunPipeline := runPipeline
	origStdout := stdout
	origStderr := stderr
	origFileExists := fileExists
	origRunWizard := runWizard
	origSaveConfig := saveConfig
	origFingerprintFile := fingerprintFile

	t.Cleanup(func() {
		loadConfigFile = origLoadConfigFile
		findConfigFile = origFindConfigFile
		newDescriber = origNewDescriber
		newImageCatalog = origNewImageCatalog
		newTokenIssuer = origNewTokenIssuer
		newUploader = origNewUploader
		checkTools = origCheckTools
		runPipeline = origRunPipeline
		stdout = origStdout
		stderr = origStderr
		fileExists = origFileExists
		runWizard = origRunWizard
		saveConfig = origSaveConfig
		fingerprintFile = origFingerprintFile
	})

	findConfigFile = func() (string, error) {
		return "", errors.New("config file stackplan.yaml not found")
	}
	checkTools = func() error { return nil }
}

// captureOutput redirects the handler output streams to buffers.
func captureOutput(t *testing.T) (out, errOut *bytes.Buffer) {
	t.Helper()
	out, errOut = &bytes.Buffer{}, &bytes.Buffer{}
	stdout = out
	stderr = errOut
	return out, errOut
}
