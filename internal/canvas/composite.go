package canvas

import "image"

// destinationOut scales every pixel of dst inside r by the inverse of the
// mask coverage. dst holds premultiplied colour so scaling all four channels
// keeps it valid.
func destinationOut(dst *image.RGBA, mask *image.Alpha, r image.Rectangle) {
	r = r.Intersect(dst.Bounds()).Intersect(mask.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		mi := mask.PixOffset(r.Min.X, y)
		di := dst.PixOffset(r.Min.X, y)
		for x := r.Min.X; x < r.Max.X; x, mi, di = x+1, mi+1, di+4 {
			m := uint32(mask.Pix[mi])
			if m == 0 {
				continue
			}
			k := 255 - m
			px := dst.Pix[di : di+4 : di+4]
			px[0] = uint8((uint32(px[0])*k + 127) / 255)
			px[1] = uint8((uint32(px[1])*k + 127) / 255)
			px[2] = uint8((uint32(px[2])*k + 127) / 255)
			px[3] = uint8((uint32(px[3])*k + 127) / 255)
		}
	}
}
