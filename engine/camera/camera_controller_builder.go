package camera

// ControllerOption is a functional option for configuring a Controller.
type ControllerOption func(*controllerImpl)

// WithDistance sets the initial third-person orbit distance. The value is
// clamped to the distance bounds at construction.
//
// Parameters:
//   - distance: the initial orbit distance
//
// Returns:
//   - ControllerOption: functional option to set the distance
func WithDistance(distance float32) ControllerOption {
	return func(cc *controllerImpl) {
		cc.distance = distance
	}
}

// WithDistanceBounds sets the minimum and maximum orbit distance.
//
// Parameters:
//   - min: the closest allowed distance
//   - max: the farthest allowed distance
//
// Returns:
//   - ControllerOption: functional option to set the distance bounds
func WithDistanceBounds(min, max float32) ControllerOption {
	return func(cc *controllerImpl) {
		cc.minDistance = min
		cc.maxDistance = max
	}
}

// WithHeight sets the vertical component of the third-person orbit offset.
//
// Parameters:
//   - height: the orbit height above the player position
//
// Returns:
//   - ControllerOption: functional option to set the orbit height
func WithHeight(height float32) ControllerOption {
	return func(cc *controllerImpl) {
		cc.height = height
	}
}

// WithSmoothing sets the per-tick exponential smoothing factor for the
// third-person camera position. Expected in (0, 1]; 1 disables smoothing.
//
// Parameters:
//   - smoothing: the smoothing factor
//
// Returns:
//   - ControllerOption: functional option to set the smoothing factor
func WithSmoothing(smoothing float32) ControllerOption {
	return func(cc *controllerImpl) {
		if smoothing > 0 && smoothing <= 1 {
			cc.smoothing = smoothing
		}
	}
}

// WithZoomStep sets the distance change applied per wheel unit or zoom key
// press.
//
// Parameters:
//   - step: the zoom step in world units
//
// Returns:
//   - ControllerOption: functional option to set the zoom step
func WithZoomStep(step float32) ControllerOption {
	return func(cc *controllerImpl) {
		if step > 0 {
			cc.zoomStep = step
		}
	}
}

// WithHeadOffset sets the first-person camera height above the player
// position.
//
// Parameters:
//   - offset: the head height in world units
//
// Returns:
//   - ControllerOption: functional option to set the head offset
func WithHeadOffset(offset float32) ControllerOption {
	return func(cc *controllerImpl) {
		cc.headOffset = offset
	}
}

// WithCrouchDrop sets the camera height reduction applied while crouched, in
// both modes.
//
// Parameters:
//   - drop: the height reduction in world units
//
// Returns:
//   - ControllerOption: functional option to set the crouch drop
func WithCrouchDrop(drop float32) ControllerOption {
	return func(cc *controllerImpl) {
		cc.crouchDrop = drop
	}
}
