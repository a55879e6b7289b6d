package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/knaito/naraigoto-api/internal/models"
)

func testFamily() map[string]*models.FamilyMember {
	return map[string]*models.FamilyMember{
		models.MemberSister:  {Name: "はなちゃん"},
		models.MemberBrother: {Name: "たろうくん"},
	}
}

func TestResolveWhoExactNames(t *testing.T) {
	family := testFamily()

	assert.Equal(t, WhoSister, ResolveWho(family, "はなちゃん"))
	assert.Equal(t, WhoBrother, ResolveWho(family, "たろうくん"))
	assert.Equal(t, WhoBoth, ResolveWho(family, "はなちゃん＋たろうくん"))
	assert.Equal(t, WhoUnknown, ResolveWho(family, ""))
}

func TestResolveWhoStaleLabels(t *testing.T) {
	family := testFamily()

	// Labels written before a rename still resolve via substring heuristics.
	assert.Equal(t, WhoBoth, ResolveWho(family, "旧姉＋旧弟"))
	assert.Equal(t, WhoSister, ResolveWho(family, "お姉ちゃん"))
	assert.Equal(t, WhoBrother, ResolveWho(family, "弟くん"))
	assert.Equal(t, WhoSister, ResolveWho(family, "だれか"))
}

func TestBothLabel(t *testing.T) {
	assert.Equal(t, "はなちゃん＋たろうくん", BothLabel(testFamily()))
	assert.Equal(t, "お姉ちゃん＋弟くん", BothLabel(nil), "defaults cover a missing family block")
}
