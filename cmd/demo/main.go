// Command demo is the out-of-scope "demo/visualiser host" collaborator:
// it loads a CSV of rectangles into a Tree and serves range queries
// over HTTP. Grounded on the teacher's cmd/parcel_server/main.go (flag
// -path, load-then-serve shape) with the HTTP layer swapped for
// gin+cors, the stack 444lessio-GeoRunner's own demo main.go wires up.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/0right/regionquad/internal/sampledata"
	"github.com/0right/regionquad/pkg/quadtree"
)

var (
	pathFlag = flag.String("path", "", "path to a sample CSV file (x,y,w,h,id per line)")
	addrFlag = flag.String("addr", ":8080", "address to listen on")
)

// Parcel is the demo's item: a rectangle with an opaque ID, loaded
// straight from a sampledata.Record.
type Parcel struct {
	ID   string
	Rect quadtree.Rect
}

type parcelTree = quadtree.Tree[*Parcel, quadtree.Rect, quadtree.Rect, quadtree.RectPolicy]

func newParcelTree(bounds quadtree.Rect) *parcelTree {
	return quadtree.NewTree[*Parcel, quadtree.Rect, quadtree.Rect, quadtree.RectPolicy](bounds, func(p *Parcel) quadtree.Rect { return p.Rect })
}

func main() {
	flag.Parse()

	tree := newParcelTree(quadtree.Rect{X: -1e6, Y: -1e6, W: 2e6, H: 2e6})

	if *pathFlag != "" {
		if err := loadSampleData(tree, *pathFlag); err != nil {
			log.Fatalf("loading sample data: %s", err)
		}
	}

	r := gin.Default()
	r.Use(cors.Default())

	handler := &rectQueryHandler{tree: tree}
	r.GET("/query", handler.handle)
	r.GET("/stats", handler.stats)

	log.Printf("listening on %s (%d items indexed)\n", *addrFlag, tree.Len())
	log.Fatal(r.Run(*addrFlag))
}

func loadSampleData(tree *parcelTree, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	entries, err := sampledata.ReadAll(f)
	if err != nil {
		return err
	}

	loaded, failed := 0, 0
	items := make([]*Parcel, 0, len(entries))
	for _, e := range entries {
		if e.Error != nil {
			fmt.Printf("%d: %s\n", e.LineNum, e.Error)
			failed++
			continue
		}
		rec := e.Record
		items = append(items, &Parcel{
			ID:   rec.ID,
			Rect: quadtree.Rect{X: rec.X, Y: rec.Y, W: rec.W, H: rec.H},
		})
		loaded++
	}

	if err := tree.AddBulk(items); err != nil {
		return err
	}

	fmt.Printf("loaded %d records, %d failed\n", loaded, failed)
	return nil
}
