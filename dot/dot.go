// Package dot renders an avl.Tree in the Graphviz DOT language.
//
// Only the tree's read accessors are used, so rendering never changes the
// tree. Render the output with e.g. `dot -Tpng tree.dot -o tree.png`.
package dot

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"avl"
)

const header = `digraph AVLtree {
pad     = 0.1;
margin  = 0;
overlap = false
bgcolor = "black"
rankdir = TB
node [style="rounded,filled",fillcolor=white, margin=0, penwidth="3%",radius=0.25, shape=rectangle, margin="0.2,0.2",fontcolor=black;]
`

// Write writes t to w as a DOT digraph, one vertex per node labelled with
// its key, height, size and links. Left edges are orange, right edges
// light blue.
func Write[K any](w io.Writer, t *avl.Tree[K]) error {
	bw := bufio.NewWriter(w)
	if _, err := io.WriteString(bw, header); err != nil {
		return err
	}
	if root := t.Root(); !root.IsNil() {
		writeHelper(bw, t, root)
	}
	if _, err := io.WriteString(bw, "}\n"); err != nil {
		return err
	}
	return bw.Flush()
}

// WriteFile writes t as DOT into the file at path.
func WriteFile[K any](path string, t *avl.Tree[K]) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return Write(f, t)
}

// writeHelper is a helper function of Write. Errors stick in the
// bufio.Writer and surface on Flush.
func writeHelper[K any](w *bufio.Writer, t *avl.Tree[K], id avl.NodeID) {
	n := t.Node(id)
	label := fmt.Sprintf("key: %v, h: %d, size: %d\nid: %d, l: %s, r: %s",
		n.Key, n.Height, n.Size, n.ID, name(n.Left), name(n.Right))
	fmt.Fprintf(w, "%d [label=%q];\n", n.ID, label)

	for _, c := range []struct {
		id    avl.NodeID
		color string
	}{{n.Left, "orange"}, {n.Right, "lightblue"}} {
		if c.id.IsNil() {
			continue
		}
		fmt.Fprintf(w, "%d -> %d [color=%s, fontcolor=white, weight=1];\n", n.ID, c.id, c.color)
		writeHelper(w, t, c.id)
	}
}

// name returns the vertex name of id, "nil" for the absent node.
func name(id avl.NodeID) string {
	if id.IsNil() {
		return "nil"
	}
	return strconv.FormatUint(uint64(id), 10)
}
