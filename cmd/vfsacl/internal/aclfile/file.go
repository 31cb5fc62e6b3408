// Package aclfile implements the human-editable YAML representation of
// NFSv4.1 ACLs used by vfsacl commands.
//
// Example:
//
//	entries:
//	  - type: allow
//	    mask: [READ_DATA, WRITE_DATA]
//	    who: "1000"
//	  - type: allow
//	    mask: [READ_DATA]
//	    who: "2000"
//	    group: true
//	  - type: deny
//	    flags: [FILE_INHERIT]
//	    mask: [DELETE]
//	    who: EVERYONE@
package aclfile

import (
	"fmt"
	"io"
	"strconv"

	"github.com/nspcc-dev/vfsacl/pkg/acl"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// File is a YAML document holding an ACL.
type File struct {
	Entries []Entry `yaml:"entries"`
}

// Entry is a YAML form of acl.Entry.
type Entry struct {
	Type  string   `yaml:"type"`
	Flags []string `yaml:"flags,omitempty"`
	Mask  []string `yaml:"mask,flow"`
	// Who is a numeric principal id or one of OWNER@, GROUP@, EVERYONE@.
	Who   string `yaml:"who"`
	Group bool   `yaml:"group,omitempty"`
	// Special marks a numeric Who as a well-known principal without a name.
	Special bool `yaml:"special,omitempty"`
}

// FromACL converts the ACL into its YAML form.
func FromACL(list *acl.ACL) File {
	var f File
	if list == nil {
		return f
	}

	f.Entries = make([]Entry, 0, list.Len())
	for _, e := range list.Entries {
		ye := Entry{
			Type:  e.Type.String(),
			Flags: (e.Flag &^ acl.FlagGroup).Names(),
			Mask:  e.Perm.Names(),
		}

		if name := e.SpecialName(); name != "" {
			ye.Who = name
			// GROUP@ is a group principal by definition
			ye.Group = e.IsGroup() && e.ID() != acl.SpecialGroup
		} else {
			ye.Who = strconv.FormatUint(uint64(e.ID()), 10)
			ye.Group = e.IsGroup()
			ye.Special = e.IsSpecial()
		}

		f.Entries = append(f.Entries, ye)
	}

	return f
}

// ACL converts the document into an ACL.
func (f File) ACL() (*acl.ACL, error) {
	entries := make([]acl.Entry, len(f.Entries))
	for i := range f.Entries {
		var err error
		entries[i], err = f.Entries[i].entry()
		if err != nil {
			return nil, fmt.Errorf("entry #%d: %w", i, err)
		}
	}

	return &acl.ACL{Entries: entries}, nil
}

func (x Entry) entry() (acl.Entry, error) {
	typ, err := acl.ParseType(x.Type)
	if err != nil {
		return acl.Entry{}, err
	}

	flag, err := acl.ParseFlags(x.Flags)
	if err != nil {
		return acl.Entry{}, err
	}

	mask, err := acl.ParseMask(x.Mask)
	if err != nil {
		return acl.Entry{}, err
	}

	group := x.Group || flag&acl.FlagGroup != 0

	if id, ok := acl.ParseSpecial(x.Who); ok {
		return specialEntry(typ, flag, mask, id, group), nil
	}

	id, err := strconv.ParseUint(x.Who, 10, 32)
	if err != nil {
		return acl.Entry{}, fmt.Errorf("invalid principal %q", x.Who)
	}

	switch {
	case x.Special:
		return specialEntry(typ, flag, mask, uint32(id), group), nil
	case group:
		return acl.NewGroupEntry(typ, flag, mask, uint32(id)), nil
	default:
		return acl.NewUserEntry(typ, flag, mask, uint32(id)), nil
	}
}

func specialEntry(typ acl.Type, flag acl.Flag, mask acl.Mask, id uint32, group bool) acl.Entry {
	e := acl.NewSpecialEntry(typ, flag, mask, id)
	if group && !e.IsGroup() {
		e.Flag |= acl.FlagGroup
		e.Who = acl.Who{GID: id}
	}
	return e
}

// Decode reads the YAML document from r. Unknown fields are rejected.
func Decode(r io.Reader) (*acl.ACL, error) {
	var f File

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	err := dec.Decode(&f)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("decode YAML: %w", err)
	}

	return f.ACL()
}

// Load reads the YAML document from the file.
func Load(fs afero.Fs, path string) (*acl.ACL, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open ACL file: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Encode writes the ACL to w as a YAML document.
func Encode(w io.Writer, list *acl.ACL) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	err := enc.Encode(FromACL(list))
	if err != nil {
		return fmt.Errorf("encode YAML: %w", err)
	}

	return enc.Close()
}
