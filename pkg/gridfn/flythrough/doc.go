/*
Package flythrough evaluates registered gridded functions along a
trajectory, the way a satellite flies through model output.

A Trajectory is a time series of up to three spatial coordinates. Fly
matches each function's arguments positionally against (time, c1, c2, c3),
evaluates every sample, and drops samples that fall outside any function's
grid; the surviving samples keep their original indices in NetIdx so
results line up with the input trajectory.

SampleTrajectory generates a deterministic synthetic orbit for testing and
demos, and results round-trip through CSV via WriteCSV and ReadCSV.
*/
package flythrough
