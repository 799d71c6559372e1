package figma

// FileResponse represents the complete response from the Figma file API endpoint.
// It contains the file metadata, the document tree, and schema version information.
type FileResponse struct {
	Name          string `json:"name"`
	LastModified  string `json:"lastModified"`
	ThumbnailURL  string `json:"thumbnailUrl"`
	Version       string `json:"version"`
	Document      Node   `json:"document"`
	SchemaVersion int    `json:"schemaVersion"`
}

// NodesResponse represents the response from the Figma nodes API endpoint when fetching specific nodes.
// It contains file metadata and a map of node IDs to their corresponding NodeData.
type NodesResponse struct {
	Name         string              `json:"name"`
	LastModified string              `json:"lastModified"`
	Version      string              `json:"version"`
	Nodes        map[string]NodeData `json:"nodes"`
}

// NodeData wraps a requested node with its document subtree.
// This is the structure returned for each requested node in a NodesResponse.
type NodeData struct {
	Document Node `json:"document"`
}

// Node represents a single element in the Figma document tree hierarchy.
// Nodes can be components, frames, groups, text, or other Figma elements,
// each carrying their own geometry, paint, and typography properties.
//
// Visible is a pointer because the API omits the field entirely for visible
// nodes; only explicitly hidden nodes carry "visible": false.
type Node struct {
	ID                  string     `json:"id"`
	Name                string     `json:"name"`
	Type                string     `json:"type"`
	Visible             *bool      `json:"visible,omitempty"`
	Children            []Node     `json:"children,omitempty"`
	Fills               []Paint    `json:"fills,omitempty"`
	Strokes             []Paint    `json:"strokes,omitempty"`
	StrokeWeight        float64    `json:"strokeWeight,omitempty"`
	CornerRadius        float64    `json:"cornerRadius,omitempty"`
	Characters          string     `json:"characters,omitempty"`
	Style               *TypeStyle `json:"style,omitempty"`
	AbsoluteBoundingBox *Rectangle `json:"absoluteBoundingBox,omitempty"`
}

// Color represents an RGBA color with float values ranging from 0 to 1.
// The R, G, B, and A (alpha/opacity) values must be converted to 0-255 range for standard use.
type Color struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
	A float64 `json:"a"`
}

// Paint represents a fill or stroke applied to a Figma node.
// It includes the paint type (SOLID, GRADIENT_LINEAR, IMAGE, etc.), visibility,
// opacity, and color information for solid paints.
type Paint struct {
	Type    string  `json:"type"`
	Visible bool    `json:"visible"`
	Opacity float64 `json:"opacity"`
	Color   *Color  `json:"color,omitempty"`
}

// TypeStyle represents the text styling properties this generator consumes:
// font family, weight, and size.
type TypeStyle struct {
	FontFamily string  `json:"fontFamily"`
	FontWeight float64 `json:"fontWeight"`
	FontSize   float64 `json:"fontSize"`
}

// Rectangle represents a bounding box with position (X, Y) and dimensions (Width, Height).
// Used to define the absolute position and size of nodes in the Figma canvas.
type Rectangle struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}
