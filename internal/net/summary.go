package net

import (
	"fmt"
	"io"
)

// Summary prints a summary of the network architecture.
func (n *Network) Summary(w io.Writer) {
	fmt.Fprintln(w, "Model: MLP")
	fmt.Fprintln(w, "_________________________________________________________________")
	fmt.Fprintf(w, "%-15s %-16s %-10s %-10s\n", "Layer", "Activation", "Neurons", "Param #")
	fmt.Fprintln(w, "=================================================================")

	names := [3]string{"input", "hidden", "output"}
	total := 0
	for i, l := range n.Layers() {
		params := len(l.Params())
		if i > 0 {
			total += params
		}
		fmt.Fprintf(w, "%-15s %-16s %-10d %-10d\n", names[i], l.Activation, l.Size(), params)
	}
	fmt.Fprintln(w, "=================================================================")
	fmt.Fprintf(w, "Trainable params: %d\n", total)
	if n.scaling {
		fmt.Fprintln(w, "Scaling: on")
	}
}
