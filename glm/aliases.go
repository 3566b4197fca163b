package glm

type Vec3f = Vec3[float32]
