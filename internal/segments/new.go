package segments

type implStore struct {
	root string
	ext  string
}

// New creates a Store over the segment root directory. ext is the
// extension the capture side gives segment files, including the dot.
func New(root, ext string) Store {
	return &implStore{
		root: root,
		ext:  ext,
	}
}
