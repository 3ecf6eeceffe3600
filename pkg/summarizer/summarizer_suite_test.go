package summarizer

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestSummarizer(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Summarizer Suite")
}
