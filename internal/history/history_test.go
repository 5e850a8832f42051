package history_test

import (
	"os"
	"path/filepath"
	"time"

	"github.com/go-git/go-git/v6"
	"github.com/go-git/go-git/v6/plumbing/object"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/benharvie/commitcheck/internal/history"
)

// initRepo creates a repository in dir with one commit per message, in
// order, and returns the commit hashes.
func initRepo(dir string, messages ...string) []string {
	repo, err := git.PlainInit(dir, false)
	Expect(err).NotTo(HaveOccurred())

	worktree, err := repo.Worktree()
	Expect(err).NotTo(HaveOccurred())

	hashes := make([]string, 0, len(messages))

	for i, message := range messages {
		path := filepath.Join(dir, "file.txt")
		Expect(os.WriteFile(path, []byte(message), 0o644)).To(Succeed())

		_, err = worktree.Add("file.txt")
		Expect(err).NotTo(HaveOccurred())

		hash, err := worktree.Commit(message, &git.CommitOptions{
			Author: &object.Signature{
				Name:  "Test Author",
				Email: "test@example.com",
				When:  time.Now().Add(time.Duration(i) * time.Second),
			},
		})
		Expect(err).NotTo(HaveOccurred())

		hashes = append(hashes, hash.String())
	}

	return hashes
}

var _ = Describe("Reader", func() {
	var dir string

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
	})

	Describe("Open", func() {
		It("fails outside a repository", func() {
			_, err := history.Open(dir)
			Expect(err).To(MatchError(history.ErrNotARepository))
		})

		It("discovers the repository from a subdirectory", func() {
			initRepo(dir, "Initial commit")

			sub := filepath.Join(dir, "nested", "deep")
			Expect(os.MkdirAll(sub, 0o755)).To(Succeed())

			reader, err := history.Open(sub)
			Expect(err).NotTo(HaveOccurred())
			Expect(reader).NotTo(BeNil())
		})
	})

	Describe("Commits", func() {
		It("returns commits newest first", func() {
			hashes := initRepo(dir, "First commit", "Second commit", "Third commit")

			reader, err := history.Open(dir)
			Expect(err).NotTo(HaveOccurred())

			commits, err := reader.Commits("", 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(commits).To(HaveLen(3))
			Expect(commits[0].Message).To(Equal("Third commit"))
			Expect(commits[0].Hash).To(Equal(hashes[2]))
			Expect(commits[2].Message).To(Equal("First commit"))
		})

		It("honors the limit", func() {
			initRepo(dir, "First commit", "Second commit", "Third commit")

			reader, err := history.Open(dir)
			Expect(err).NotTo(HaveOccurred())

			commits, err := reader.Commits("HEAD", 2)
			Expect(err).NotTo(HaveOccurred())
			Expect(commits).To(HaveLen(2))
			Expect(commits[0].Message).To(Equal("Third commit"))
		})

		It("resolves explicit revisions", func() {
			hashes := initRepo(dir, "First commit", "Second commit")

			reader, err := history.Open(dir)
			Expect(err).NotTo(HaveOccurred())

			commits, err := reader.Commits(hashes[0], 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(commits).To(HaveLen(1))
			Expect(commits[0].Message).To(Equal("First commit"))
		})

		It("fails on an unknown revision", func() {
			initRepo(dir, "First commit")

			reader, err := history.Open(dir)
			Expect(err).NotTo(HaveOccurred())

			_, err = reader.Commits("does-not-exist", 0)
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("Lookup", func() {
		It("resolves individual commits by hash", func() {
			hashes := initRepo(dir, "First commit", "Second commit")

			reader, err := history.Open(dir)
			Expect(err).NotTo(HaveOccurred())

			commits, err := reader.Lookup([]string{hashes[1], hashes[0]})
			Expect(err).NotTo(HaveOccurred())
			Expect(commits).To(HaveLen(2))
			Expect(commits[0].Message).To(Equal("Second commit"))
			Expect(commits[1].Message).To(Equal("First commit"))
		})
	})
})
