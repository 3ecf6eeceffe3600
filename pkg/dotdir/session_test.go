package dotdir_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/mnemolabs/mnemo/pkg/dotdir"
)

var _ = Describe("session", func() {
	var tmpDir string
	var m *dotdir.Manager

	BeforeEach(func() {
		var err error
		tmpDir, err = os.MkdirTemp("", "session-test-*")
		Expect(err).NotTo(HaveOccurred())

		tmpDir, err = filepath.EvalSymlinks(tmpDir)
		Expect(err).NotTo(HaveOccurred())

		m = dotdir.NewManager()
	})

	AfterEach(func() {
		os.RemoveAll(tmpDir)
	})

	Describe("LoadSessionState", func() {
		It("returns nil when no session exists", func() {
			state, err := m.LoadSessionState(tmpDir)
			Expect(err).NotTo(HaveOccurred())
			Expect(state).To(BeNil())
		})

		It("round-trips a saved session", func() {
			saved := &dotdir.SessionState{
				ConversationID: "conv-1",
				Messages: []dotdir.SessionMessage{
					{Role: "user", Content: "hello"},
					{Role: "assistant", Content: "hi there"},
				},
			}
			Expect(m.SaveSession(saved, tmpDir)).To(Succeed())

			loaded, err := m.LoadSessionState(tmpDir)
			Expect(err).NotTo(HaveOccurred())
			Expect(loaded).To(Equal(saved))
		})

		It("errors on a corrupt session file", func() {
			path := filepath.Join(tmpDir, "session.json")
			Expect(os.WriteFile(path, []byte("not json"), 0o644)).To(Succeed())

			_, err := m.LoadSessionState(tmpDir)
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("SaveSession", func() {
		It("rejects a nil session", func() {
			Expect(m.SaveSession(nil, tmpDir)).To(HaveOccurred())
		})
	})

	Describe("ClearSession", func() {
		It("removes the session file", func() {
			saved := &dotdir.SessionState{ConversationID: "conv-1"}
			Expect(m.SaveSession(saved, tmpDir)).To(Succeed())

			Expect(m.ClearSession(tmpDir)).To(Succeed())

			state, err := m.LoadSessionState(tmpDir)
			Expect(err).NotTo(HaveOccurred())
			Expect(state).To(BeNil())
		})

		It("is a no-op when no session exists", func() {
			Expect(m.ClearSession(tmpDir)).To(Succeed())
		})
	})
})
