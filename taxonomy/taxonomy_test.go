package taxonomy

import (
	"bytes"
	"strings"
	"testing"
)

// buildTiny constructs a tiny tree by hand:
//   0 (root, life) -> 1 (superkingdom) -> 2 (genus) -> 3 (species, leaf)
//                                       -> 4 (genus) -> 5 (species, leaf)
func buildTiny() *Taxonomy {
	tree := []node{
		{parent: 0, rank: RankLife, leaf: false},
		{parent: 0, rank: RankSuperKingdom, leaf: false},
		{parent: 1, rank: RankGenus, leaf: false},
		{parent: 2, rank: RankSpecies, leaf: true},
		{parent: 1, rank: RankGenus, leaf: false},
		{parent: 4, rank: RankSpecies, leaf: true},
	}
	names := []string{"root", "Bacteria", "Escherichia", "Escherichia coli", "Salmonella", "Salmonella enterica"}
	origID := []uint64{1, 2, 561, 562, 590, 28901}
	return &Taxonomy{tree: tree, names: names, origID: origID}
}

func TestAncestorAtRank(t *testing.T) {
	tax := buildTiny()
	if got := tax.AncestorAtRank(3, RankGenus); got != 2 {
		t.Errorf("AncestorAtRank(3, genus) = %d, want 2", got)
	}
	if got := tax.AncestorAtRank(3, RankSpecies); got != 3 {
		t.Errorf("AncestorAtRank(3, species) = %d, want 3", got)
	}
	// Climbing past the requested rank without a hit returns 0.
	if got := tax.AncestorAtRank(0, RankSpecies); got != 0 {
		t.Errorf("AncestorAtRank(root, species) = %d, want 0", got)
	}
}

func TestLCA(t *testing.T) {
	tax := buildTiny()
	if got := tax.LCA(3, 5); got != 1 {
		t.Errorf("LCA(E. coli, S. enterica) = %d, want 1 (Bacteria)", got)
	}
	if got := tax.LCA(3, 3); got != 3 {
		t.Errorf("LCA(x, x) = %d, want x", got)
	}
	if got := tax.LCA(2, 3); got != 2 {
		t.Errorf("LCA(parent, child) = %d, want parent", got)
	}
}

func TestLoadSaveRoundTrip(t *testing.T) {
	tax := buildTiny()
	var buf bytes.Buffer
	if err := tax.Save(&buf); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := Load(&buf)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.NodeCount() != tax.NodeCount() {
		t.Fatalf("NodeCount mismatch: %d vs %d", loaded.NodeCount(), tax.NodeCount())
	}
	for i := 0; i < tax.NodeCount(); i++ {
		id := uint64(i)
		if loaded.Name(id) != tax.Name(id) {
			t.Errorf("name[%d] = %q, want %q", id, loaded.Name(id), tax.Name(id))
		}
		if loaded.Parent(id) != tax.Parent(id) {
			t.Errorf("parent[%d] = %d, want %d", id, loaded.Parent(id), tax.Parent(id))
		}
		if loaded.OriginalID(id) != tax.OriginalID(id) {
			t.Errorf("origID[%d] = %d, want %d", id, loaded.OriginalID(id), tax.OriginalID(id))
		}
	}
}

func TestLoadNCBI(t *testing.T) {
	nodes := strings.NewReader(
		"1\t|\t1\t|\tlife\t|\n" +
			"2\t|\t1\t|\tsuperkingdom\t|\n" +
			"561\t|\t2\t|\tgenus\t|\n" +
			"562\t|\t561\t|\tspecies\t|\n",
	)
	names := strings.NewReader(
		"1\t|\troot\t|\t\t|\tscientific name\t|\n" +
			"2\t|\tBacteria\t|\t\t|\tscientific name\t|\n" +
			"561\t|\tEscherichia\t|\t\t|\tscientific name\t|\n" +
			"562\t|\tEscherichia coli\t|\t\t|\tscientific name\t|\n",
	)
	tax, err := LoadNCBI(nodes, names)
	if err != nil {
		t.Fatalf("LoadNCBI: %v", err)
	}
	if tax.NodeCount() != 4 {
		t.Fatalf("NodeCount() = %d, want 4", tax.NodeCount())
	}
	var speciesID uint64
	for i := 0; i < tax.NodeCount(); i++ {
		if tax.OriginalID(uint64(i)) == 562 {
			speciesID = uint64(i)
		}
	}
	if tax.NodeRank(speciesID) != RankSpecies {
		t.Errorf("rank of taxid 562 = %v, want species", tax.NodeRank(speciesID))
	}
	if tax.Name(speciesID) != "Escherichia coli" {
		t.Errorf("name of taxid 562 = %q, want %q", tax.Name(speciesID), "Escherichia coli")
	}
	if got := tax.AncestorAtRank(speciesID, RankGenus); tax.OriginalID(got) != 561 {
		t.Errorf("genus ancestor of taxid 562 has origID %d, want 561", tax.OriginalID(got))
	}
}
