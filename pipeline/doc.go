// Package pipeline provides a minimal push-driven host for video filters.
//
// A Link connects one interfaces.IVideoFilter to one interfaces.ISliceSink.
// Configure negotiates the pixel format and fixes the link geometry; every
// frame pushed afterwards is turned into a derived view, announced to the
// sink, and streamed to it slice by slice:
//
//	filter, _ := crop.NewFilter(crop.Config{Geometry: "100:50:640:480"})
//	sink := pipeline.NewCollector()
//	link := pipeline.NewLink(filter, sink, pipeline.DefaultConfig())
//
//	if _, err := link.Configure(1920, 1080, []pixfmt.Format{pixfmt.YUV420P}); err != nil {
//	    return err
//	}
//	if err := link.PushFrame(src); err != nil {
//	    return err
//	}
//
// Input slices are Config.SliceHeight rows high and are delivered in
// Config.Direction order. Slices the filter drops never reach the sink.
//
// A Link is not safe for concurrent use.
package pipeline
