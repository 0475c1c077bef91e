/*
Package ishikawa analyzes incident descriptions into cause-effect (fishbone)
trees and renders them as diagrams and printable reports.

It separates the analysis state machine (Idle, Loading, Ready) from the data
provider, the session store and the diagram renderer. This Hexagonal
Architecture allows ishikawa to be embedded in any interface: CLI, HTTP
server, or AI agent infrastructure.

# Concept

An incident description is classified into a category (fire, slip or generic)
and resolved against a fixture catalog; unknown incidents fall back to a
deterministic synthesizer. The result is a flat list of nodes where each node
points to its parent and the root carries parent key 0. Analysis levels 1 to 3
control how deep the cause and effect branches go.

# Usage

	package main

	import (
		"context"
		"fmt"
		"log"

		"github.com/aretw0/ishikawa"
	)

	func main() {
		eng := ishikawa.New()

		ctx := context.Background()
		session, err := eng.Generate(ctx, "session-123", "Fire in warehouse", 2)
		if err != nil {
			log.Fatal(err)
		}

		svg, err := eng.Diagram(ctx, session.ID)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(svg)
	}
*/
package ishikawa
