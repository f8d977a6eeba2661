package records

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const personYAML = `
id: ocd-person/abcd
name: Jane Doe
given_name: Jane
birth_date: 1970-02-03
extras:
  nickname: JD
ids:
  twitter: janedoe
  openstates: ABC000123
other_identifiers:
  - scheme: votesmart
    identifier: 1234
contact_details:
  - note: Capitol Office
    voice: 555-555-5555
    email: jane@example.com
party:
  - name: Democratic
roles:
  - type: lower
    district: 3
    jurisdiction: ocd-jurisdiction/country:us/state:nc/government
    start_date: 2019-01-01
`

func TestDecodePerson(t *testing.T) {
	p, err := DecodePerson([]byte(personYAML))
	require.NoError(t, err)

	assert.Equal(t, "ocd-person/abcd", p.ID)
	assert.Equal(t, Scalar("1970-02-03"), p.BirthDate)
	assert.Equal(t, "JD", p.Extras["nickname"])
	assert.Equal(t, Scalar("janedoe"), p.IDs["twitter"])
	require.Len(t, p.OtherIdentifiers, 1)
	assert.Equal(t, Scalar("1234"), p.OtherIdentifiers[0].Identifier)
	require.Len(t, p.ContactDetails, 1)
	assert.Equal(t, "555-555-5555", p.ContactDetails[0].Voice)
	require.Len(t, p.Roles, 1)
	assert.Equal(t, Scalar("3"), p.Roles[0].District)
	assert.Equal(t, Scalar("2019-01-01"), p.Roles[0].StartDate)
}

func TestDecodePerson_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{"missing name", "id: ocd-person/1\n", "Person.Name failed required"},
		{"bad id", "id: person/1\nname: X\n", "startswith=ocd-person/"},
		{"role without type", "id: ocd-person/1\nname: X\nroles:\n  - jurisdiction: j\n", "Person.Roles[0].Type failed required"},
		{"not yaml", "id: [", "failed to parse yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodePerson([]byte(tt.data))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestDecodeOrganization(t *testing.T) {
	data := `
id: ocd-organization/1
name: Finance
jurisdiction: ocd-jurisdiction/country:us/state:nc/government
classification: committee
parent: lower
memberships:
  - name: Jane Doe
    id: ocd-person/abcd
    role: chair
  - name: John Smith
`
	o, err := DecodeOrganization([]byte(data))
	require.NoError(t, err)

	assert.Equal(t, "lower", o.Parent)
	assert.False(t, ParentIsInternal(o.Parent))
	require.Len(t, o.Memberships, 2)
	assert.Equal(t, "chair", o.Memberships[0].Role)
	assert.Empty(t, o.Memberships[1].ID)
}

func TestParentIsInternal(t *testing.T) {
	assert.True(t, ParentIsInternal("ocd-organization/123"))
	assert.False(t, ParentIsInternal("upper"))
	assert.False(t, ParentIsInternal(""))
}
