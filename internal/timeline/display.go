package timeline

import (
	"bufio"
	"fmt"
	"io"
)

// Display writes the timeline as a table, marking the selected row with an
// arrow, or an empty marker when there are no tweets.
func (s *Store) Display(w io.Writer) error {
	bw := bufio.NewWriter(w)

	fmt.Fprint(bw, "\nTweets:\n\n")
	fmt.Fprintln(bw, "Sel    ID   Likes   Tweet")

	sel, hasSel := s.selection.Position()
	for i, r := range s.records {
		marker := "   "
		if hasSel && sel == i {
			marker = "-->"
		}
		fmt.Fprintf(bw, "%s    %3d   %5d   %s\n", marker, r.ID, r.Likes, r.Message)
	}

	if len(s.records) == 0 {
		fmt.Fprintln(bw, "       ***** Empty *****")
	}
	fmt.Fprintln(bw)

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing timeline: %w", err)
	}
	return nil
}
