package aclfile

import (
	"io"
	"strconv"
	"strings"

	"github.com/nspcc-dev/vfsacl/pkg/acl"
	"github.com/olekukonko/tablewriter"
)

// WriteTable prints the ACL to w as a table, one row per entry.
func WriteTable(w io.Writer, list *acl.ACL) {
	out := tablewriter.NewWriter(w)
	out.SetHeader([]string{"#", "Type", "Flags", "Mask", "Who"})
	out.SetAutoWrapText(false)

	f := FromACL(list)
	for i, e := range f.Entries {
		who := e.Who
		switch {
		case e.Special:
			who = "special:" + who
		case e.Group:
			who = "group:" + who
		}

		out.Append([]string{
			strconv.Itoa(i),
			e.Type,
			strings.Join(e.Flags, "\n"),
			strings.Join(e.Mask, "\n"),
			who,
		})
	}

	out.Render()
}
