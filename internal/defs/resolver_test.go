package defs_test

import (
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/pawnplanner/internal/defs"
)

const inheritanceXML = `<Defs>
  <GeneDef Name="GeneHairBase" Abstract="True">
    <displayCategory>Cosmetic_Hair</displayCategory>
    <label>base label</label>
    <exclusionTags><li>HairStyle</li><li>Shared</li></exclusionTags>
  </GeneDef>
  <GeneDef ParentName="GeneHairBase">
    <defName>Hair_Bald</defName>
    <label>baldness</label>
    <exclusionTags><li>Shared</li><li>Bald</li></exclusionTags>
  </GeneDef>
  <GeneDef>
    <defName>Plain</defName>
  </GeneDef>
</Defs>`

func loadXML(t *testing.T, content string) []*defs.File {
	t.Helper()
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "defs.xml"), content)
	files, err := defs.Load(root, nil)
	require.NoError(t, err)
	return files
}

func TestCollect_ExcludesAbstractAndResolvesParent(t *testing.T) {
	genes, err := defs.Collect(loadXML(t, inheritanceXML), "GeneDef")
	require.NoError(t, err)
	require.Len(t, genes, 2)

	bald := genes[0]
	assert.Equal(t, "Hair_Bald", bald.DefName())

	// own scalar wins over the template's
	label, ok := bald.Text("label")
	require.True(t, ok)
	assert.Equal(t, "baldness", label)

	// scalar only present on the template is inherited
	cat, ok := bald.Text("displayCategory")
	require.True(t, ok)
	assert.Equal(t, "Cosmetic_Hair", cat)

	// list fields concatenate own items then template items, without dedup
	tags, err := bald.Items("./exclusionTags/li")
	require.NoError(t, err)
	assert.Equal(t, []string{"Shared", "Bald", "HairStyle", "Shared"}, tags)

	assert.Equal(t, "Plain", genes[1].DefName())
}

func TestCollect_DoesNotMutateTemplate(t *testing.T) {
	files := loadXML(t, inheritanceXML)
	_, err := defs.Collect(files, "GeneDef")
	require.NoError(t, err)

	// resolving twice yields the same lists, so the source tree was not extended
	genes, err := defs.Collect(files, "GeneDef")
	require.NoError(t, err)
	tags, err := genes[0].Items("./exclusionTags/li")
	require.NoError(t, err)
	assert.Len(t, tags, 4)
}

func TestCollect_ChildBeforeParentAcrossFiles(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a_child.xml"), `<Defs>
  <HairDef ParentName="HairBase"><defName>Mohawk</defName></HairDef>
</Defs>`)
	writeFile(t, filepath.Join(root, "b_base.xml"), `<Defs>
  <HairDef Name="HairBase" Abstract="True"><category>Rural</category></HairDef>
</Defs>`)
	files, err := defs.Load(root, nil)
	require.NoError(t, err)

	hairs, err := defs.Collect(files, "HairDef")
	require.NoError(t, err)
	require.Len(t, hairs, 1)
	category, ok := hairs[0].Text("category")
	assert.True(t, ok)
	assert.Equal(t, "Rural", category)
}

func TestCollect_UnresolvedParent(t *testing.T) {
	files := loadXML(t, `<Defs>
  <TraitDef ParentName="Missing"><defName>Orphan</defName></TraitDef>
</Defs>`)
	_, err := defs.Collect(files, "TraitDef")
	require.Error(t, err)
	assert.ErrorIs(t, err, defs.ErrUnresolvedParent)
	assert.Contains(t, err.Error(), "Orphan")
}

func TestCollect_ParentOfDifferentKindIsUnresolved(t *testing.T) {
	files := loadXML(t, `<Defs>
  <HairDef Name="Base" Abstract="True"><category>Urban</category></HairDef>
  <BeardDef ParentName="Base"><defName>Full</defName></BeardDef>
</Defs>`)
	_, err := defs.Collect(files, "BeardDef")
	assert.ErrorIs(t, err, defs.ErrUnresolvedParent)
}

func TestCollect_ConcreteParentIsUnresolved(t *testing.T) {
	files := loadXML(t, `<Defs>
  <GeneDef Name="Concrete"><defName>Concrete</defName></GeneDef>
  <GeneDef ParentName="Concrete"><defName>Child</defName></GeneDef>
</Defs>`)
	_, err := defs.Collect(files, "GeneDef")
	assert.ErrorIs(t, err, defs.ErrUnresolvedParent)
}

func TestCollect_SingleLevelOnly(t *testing.T) {
	files := loadXML(t, `<Defs>
  <GeneDef Name="Grand" Abstract="True"><biostatMet>3</biostatMet></GeneDef>
  <GeneDef Name="Parent" ParentName="Grand" Abstract="True"><label>p</label></GeneDef>
  <GeneDef ParentName="Parent"><defName>Child</defName></GeneDef>
</Defs>`)
	genes, err := defs.Collect(files, "GeneDef")
	require.NoError(t, err)
	require.Len(t, genes, 1)
	assert.True(t, genes[0].Has("label"))
	assert.False(t, genes[0].Has("biostatMet"))
}

func TestTemplates_RegisterRequiresName(t *testing.T) {
	files := loadXML(t, `<Defs><GeneDef Abstract="True"><label>x</label></GeneDef></Defs>`)
	_, err := defs.Collect(files, "GeneDef")
	assert.ErrorIs(t, err, defs.ErrBadInput)
}

// TestCollect_ListConcatenationProperty checks that for any own and template
// item lists the resolved list is exactly own followed by template.
func TestCollect_ListConcatenationProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		gen := rapid.StringMatching(`[A-Za-z][A-Za-z0-9_]{0,8}`)
		own := rapid.SliceOfN(gen, 0, 5).Draw(rt, "own")
		inherited := rapid.SliceOfN(gen, 0, 5).Draw(rt, "inherited")

		li := func(items []string) string {
			var b strings.Builder
			for _, it := range items {
				fmt.Fprintf(&b, "<li>%s</li>", it)
			}
			return b.String()
		}
		content := fmt.Sprintf(`<Defs>
  <TraitDef Name="T" Abstract="True"><conflictingTraits>%s</conflictingTraits></TraitDef>
  <TraitDef ParentName="T"><defName>C</defName><conflictingTraits>%s</conflictingTraits></TraitDef>
</Defs>`, li(inherited), li(own))

		root := t.TempDir()
		writeFile(t, filepath.Join(root, "p.xml"), content)
		files, err := defs.Load(root, nil)
		if err != nil {
			rt.Fatal(err)
		}
		traits, err := defs.Collect(files, "TraitDef")
		if err != nil {
			rt.Fatal(err)
		}
		got, err := traits[0].Items("./conflictingTraits/li")
		if err != nil {
			rt.Fatal(err)
		}
		want := append(append([]string{}, own...), inherited...)
		if len(want) == 0 {
			assert.Empty(rt, got)
			return
		}
		assert.Equal(rt, want, got)
	})
}
