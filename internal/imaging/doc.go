// Package imaging renders classified scenes to images.
//
// Render paints a square canvas of the scene's image size. The layers are
// drawn in this order:
//   - black canvas, or a camera frame fitted to the canvas
//   - optional coordinate grid
//   - optional translucent FOV wedge, composited with bild's opacity blend
//   - context box (blue)
//   - FOV boundary arrows from the gaze start (green, 3 px)
//   - gaze arrow (sky blue)
//   - objects outlined by bucket: intersecting red, outside-context white,
//     unseen yellow, low-confidence grey (only with ShowLowConfidence)
//   - the DISTRACTED or FOCUS! label at (10,30)
//
// A camera frame is decorative only: it is scaled under the overlay and is
// never read by classification, which works solely on the scene's boxes.
//
// # Coordinate System
//
// Pixel coordinates match scene coordinates: (0,0) is the top-left corner, X
// grows rightward and Y grows downward. Box edges are rounded to the nearest
// pixel. For regions, (x1,y1) is inclusive and (x2,y2) is exclusive.
//
// # Colors
//
// Palette entries are hex strings: "#RGB", "#RRGGBB", or "#RRGGBBAA" for a
// translucent color. Empty entries fall back to DefaultPalette.
//
// # Output
//
// Encode returns a base64 PNG for MCP responses and SavePNG writes a file.
// CropToBox zooms into a region such as the driver box.
//
// # Thread Safety
//
// All functions are stateless and may be called concurrently. FrameCache
// guards its map and may be shared between requests.
package imaging
