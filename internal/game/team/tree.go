// Package team groups players into a display tree. Nodes live in an arena and
// are addressed by NodeID, so a group can never be made to contain itself.
package team

import (
	"fmt"
	"io"
	"strings"

	"github.com/mitchelldurbincs/courtsim/internal/game"
	"github.com/mitchelldurbincs/courtsim/internal/game/core"
)

// NodeID addresses a node in a Tree
type NodeID int

// Kind distinguishes leaves from groups
type Kind int

const (
	Leaf Kind = iota
	Group
)

// String returns the kind name
func (k Kind) String() string {
	if k == Group {
		return "group"
	}
	return "leaf"
}

type node struct {
	kind     Kind
	name     string
	player   *game.Player
	children []NodeID
}

// Tree is an arena of leaves and groups. Leaves refer to players without
// owning them, and a node may appear under several groups.
type Tree struct {
	nodes []node
}

// NewTree creates an empty tree
func NewTree() *Tree {
	return &Tree{}
}

// AddLeaf adds a leaf wrapping p and returns its id
func (t *Tree) AddLeaf(p *game.Player) NodeID {
	t.nodes = append(t.nodes, node{kind: Leaf, player: p})
	return NodeID(len(t.nodes) - 1)
}

// AddGroup adds an empty named group and returns its id
func (t *Tree) AddGroup(name string) NodeID {
	t.nodes = append(t.nodes, node{kind: Group, name: name})
	return NodeID(len(t.nodes) - 1)
}

// Len returns the number of nodes in the arena
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Kind returns the kind of the node
func (t *Tree) Kind(id NodeID) (Kind, error) {
	if !t.valid(id) {
		return Leaf, fmt.Errorf("node %d: %w", id, core.ErrUnknownNode)
	}
	return t.nodes[id].kind, nil
}

// Children returns a copy of a group's children in insertion order
func (t *Tree) Children(group NodeID) ([]NodeID, error) {
	if err := t.checkGroup(group); err != nil {
		return nil, err
	}
	children := make([]NodeID, len(t.nodes[group].children))
	copy(children, t.nodes[group].children)
	return children, nil
}

// Add appends child to group. It fails if group is not a group or if child is
// group itself or one of its ancestors.
func (t *Tree) Add(group, child NodeID) error {
	if err := t.checkGroup(group); err != nil {
		return err
	}
	if !t.valid(child) {
		return fmt.Errorf("node %d: %w", child, core.ErrUnknownNode)
	}
	if t.reaches(child, group) {
		return fmt.Errorf("adding node %d to group %d: %w", child, group, core.ErrCycle)
	}

	t.nodes[group].children = append(t.nodes[group].children, child)
	return nil
}

// Remove drops the first occurrence of child from group. Removing a node that
// is not a member is a no-op.
func (t *Tree) Remove(group, child NodeID) error {
	if err := t.checkGroup(group); err != nil {
		return err
	}

	children := t.nodes[group].children
	for i, c := range children {
		if c == child {
			t.nodes[group].children = append(children[:i], children[i+1:]...)
			return nil
		}
	}
	return nil
}

// Players returns the players under id in display order
func (t *Tree) Players(id NodeID) ([]*game.Player, error) {
	if !t.valid(id) {
		return nil, fmt.Errorf("node %d: %w", id, core.ErrUnknownNode)
	}

	var players []*game.Player
	t.walk(id, 0, func(n *node, _ int) {
		if n.kind == Leaf && n.player != nil {
			players = append(players, n.player)
		}
	})
	return players, nil
}

// Lines renders id depth first: a heading for each group, one line per
// player, indented two spaces per level.
func (t *Tree) Lines(id NodeID) ([]string, error) {
	if !t.valid(id) {
		return nil, fmt.Errorf("node %d: %w", id, core.ErrUnknownNode)
	}

	var lines []string
	t.walk(id, 0, func(n *node, depth int) {
		indent := strings.Repeat("  ", depth)
		switch {
		case n.kind == Group:
			lines = append(lines, fmt.Sprintf("%sTeam %s:", indent, n.name))
		case n.player != nil:
			lines = append(lines, indent+n.player.String())
		default:
			lines = append(lines, indent+"Empty slot")
		}
	})
	return lines, nil
}

// Display writes the rendering of id to w, one line at a time
func (t *Tree) Display(w io.Writer, id NodeID) error {
	lines, err := t.Lines(id)
	if err != nil {
		return err
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("displaying node %d: %w", id, err)
		}
	}
	return nil
}

func (t *Tree) valid(id NodeID) bool {
	return id >= 0 && int(id) < len(t.nodes)
}

func (t *Tree) checkGroup(id NodeID) error {
	if !t.valid(id) {
		return fmt.Errorf("node %d: %w", id, core.ErrUnknownNode)
	}
	if t.nodes[id].kind != Group {
		return fmt.Errorf("node %d: %w", id, core.ErrNotGroup)
	}
	return nil
}

// reaches reports whether target is from or lies below it. Shared subgroups
// are visited once.
func (t *Tree) reaches(from, target NodeID) bool {
	visited := make(map[NodeID]bool)
	stack := []NodeID{from}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if id == target {
			return true
		}
		if visited[id] {
			continue
		}
		visited[id] = true
		stack = append(stack, t.nodes[id].children...)
	}
	return false
}

func (t *Tree) walk(id NodeID, depth int, visit func(n *node, depth int)) {
	n := &t.nodes[id]
	visit(n, depth)
	for _, c := range n.children {
		t.walk(c, depth+1, visit)
	}
}
