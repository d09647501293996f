package app

import (
	"periph.io/x/devices/v3/ssd1306/image1bit"
)

// 24x24 icon glyphs, one string per row, '#' = lit pixel. Kept as string
// art so the bitmaps stay readable and editable in place.
var glyphs = map[string][]string{
	"sun": {
		"           #            ",
		"           #            ",
		"    #      #      #     ",
		"     #     #     #      ",
		"      #    #    #       ",
		"         #####          ",
		"        #######         ",
		"       #########        ",
		"       #########        ",
		"      ###########       ",
		"      ###########       ",
		"##### ########### ######",
		"      ###########       ",
		"      ###########       ",
		"       #########        ",
		"       #########        ",
		"        #######         ",
		"         #####          ",
		"      #    #    #       ",
		"     #     #     #      ",
		"    #      #      #     ",
		"           #            ",
		"           #            ",
		"                        ",
	},
	"sun_cloud": {
		"      ##                ",
		"  #   ##   #            ",
		"   # #### #             ",
		"    ######              ",
		"   ########             ",
		"## ######## ##          ",
		"   ########             ",
		"    ######    ####      ",
		"   # #### #  ######     ",
		"  #   ##   #########    ",
		"        ############    ",
		"       ##############   ",
		"      ################  ",
		"     ################## ",
		"     ################## ",
		"      ################  ",
		"                        ",
		"                        ",
		"                        ",
		"                        ",
		"                        ",
		"                        ",
		"                        ",
		"                        ",
	},
	"cloud": {
		"                        ",
		"                        ",
		"                        ",
		"        #####           ",
		"       #######          ",
		"     ###########        ",
		"    #############  ##   ",
		"   ###################  ",
		"  ##################### ",
		"  ######################",
		"  ######################",
		"   #################### ",
		"    ##################  ",
		"                        ",
		"                        ",
		"                        ",
		"                        ",
		"                        ",
		"                        ",
		"                        ",
		"                        ",
		"                        ",
		"                        ",
		"                        ",
	},
	"rain": {
		"        #####           ",
		"       #######          ",
		"     ###########        ",
		"    #############  ##   ",
		"   ###################  ",
		"  ##################### ",
		"  ######################",
		"   #################### ",
		"    ##################  ",
		"                        ",
		"    #    #    #    #    ",
		"   #    #    #    #     ",
		"  #    #    #    #      ",
		"                        ",
		"    #    #    #    #    ",
		"   #    #    #    #     ",
		"  #    #    #    #      ",
		"                        ",
		"    #    #    #    #    ",
		"   #    #    #    #     ",
		"  #    #    #    #      ",
		"                        ",
		"                        ",
		"                        ",
	},
	"thunder": {
		"        #####           ",
		"       #######          ",
		"     ###########        ",
		"    #############  ##   ",
		"   ###################  ",
		"  ##################### ",
		"  ######################",
		"   #################### ",
		"    ##################  ",
		"                        ",
		"          ####          ",
		"         ####           ",
		"        ####            ",
		"       #######          ",
		"         ####           ",
		"        ####            ",
		"       ####             ",
		"      ###               ",
		"     ##                 ",
		"    #                   ",
		"                        ",
		"                        ",
		"                        ",
		"                        ",
	},
}

// drawGlyph renders the named icon glyph with its top-left corner at (x0, y0).
// Unknown names draw nothing; the text forecast still carries the meaning.
func drawGlyph(img *image1bit.VerticalLSB, name string, x0, y0 int) {
	rows, ok := glyphs[name]
	if !ok {
		return
	}
	for y, row := range rows {
		for x := 0; x < len(row); x++ {
			if row[x] == '#' {
				img.Set(x0+x, y0+y, image1bit.On)
			}
		}
	}
}
