// Package interfaces defines the contract between a streaming host pipeline
// and the video filters it drives.
//
// [IVideoFilter] is the capability interface a filter node exposes. The
// host calls it in a fixed order: Negotiate once the neighboring formats
// are known, ConfigureInput and ConfigureOutput when the link geometry is
// fixed, then DeriveView once per frame and ClipSlice once per delivered
// slice of that frame:
//
//	format, err := filter.Negotiate(offered)
//	if err != nil {
//	    return err
//	}
//	if err := filter.ConfigureInput(interfaces.LinkConfig{Width: w, Height: h, Format: format.Format}); err != nil {
//	    return err
//	}
//	out, err := filter.ConfigureOutput()
//
// [ISliceSink] is the downstream side: it receives the derived frame
// reference followed by zero or more slices in output coordinates.
//
// Calls on one filter instance must be serialized by the host; filters do
// no internal locking.
package interfaces
